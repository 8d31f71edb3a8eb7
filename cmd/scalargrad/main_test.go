package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Version tests the version command.
func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"version"}, &out))
	assert.Equal(t, "scalargrad "+version+"\n", out.String())
}

// TestRun_DemoDefaults tests the demo output with the default inputs.
func TestRun_DemoDefaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"demo"}, &out))

	want := "x.data = 2\n" +
		"y.data = 3\n" +
		"z.data = (x + y) * y = 15\n" +
		"dz/dx (x.grad) = 3\n" +
		"dz/dy (y.grad) = 8\n"
	assert.Equal(t, want, out.String())
}

// TestRun_DemoFlags tests that -x and -y change the demo inputs.
func TestRun_DemoFlags(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"demo", "-x", "1", "-y", "-2"}, &out))

	// z = (x + y) * y, dz/dx = y, dz/dy = x + 2y
	assert.Contains(t, out.String(), "z.data = (x + y) * y = 2\n")
	assert.Contains(t, out.String(), "dz/dx (x.grad) = -2\n")
	assert.Contains(t, out.String(), "dz/dy (y.grad) = -3\n")
}

// TestRun_Errors tests usage and flag parsing failures.
func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	assert.ErrorIs(t, run(ctx, nil, &out), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"train"}, &out), errUsage)
	assert.ErrorContains(t, run(ctx, []string{"demo", "-x", "abc"}, &out), "parsing demo flags")
	assert.Empty(t, out.String())
}
