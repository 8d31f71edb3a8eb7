// Package main provides the scalargrad CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/scalargrad/autodiff"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage: scalargrad <version|demo> [flags]")

func main() {
	ctx := context.Background()
	err := run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		klog.ErrorS(err, "scalargrad failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "scalargrad %s\n", version)
		return nil
	case "demo":
		cfg := defaultDemoConfig()
		fs := flag.NewFlagSet("demo", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cfg.bindFlags(fs)
		klog.InitFlags(fs)
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("parsing demo flags: %w", err)
		}
		return runDemo(ctx, cfg, out)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// demoConfig holds the inputs of the demo expression.
type demoConfig struct {
	X float64 // Value of the leaf x.
	Y float64 // Value of the leaf y.
}

// defaultDemoConfig returns the classic x=2, y=3 inputs.
func defaultDemoConfig() demoConfig {
	return demoConfig{X: 2, Y: 3}
}

func (c *demoConfig) bindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.X, "x", c.X, "value of the leaf x")
	fs.Float64Var(&c.Y, "y", c.Y, "value of the leaf y")
}

// runDemo builds z = (x + y) * y, differentiates it and prints the results.
func runDemo(ctx context.Context, cfg demoConfig, out io.Writer) error {
	log := klog.FromContext(ctx)

	g := autodiff.NewGraph()
	x := g.Leaf(cfg.X)
	y := g.Leaf(cfg.Y)
	q := autodiff.Add(x, y)
	z := autodiff.Mul(q, y)

	if err := g.Validate(z); err != nil {
		return fmt.Errorf("validating demo graph: %w", err)
	}
	log.Info("Built graph", "nodes", g.Len(), "root", z.ID())

	fmt.Fprintf(out, "x.data = %g\n", x.Data())
	fmt.Fprintf(out, "y.data = %g\n", y.Data())
	fmt.Fprintf(out, "z.data = (x + y) * y = %g\n", z.Data())

	autodiff.Backward(z)

	if v := log.V(2); v.Enabled() {
		for _, n := range autodiff.TopologicalOrder(z) {
			v.Info("Node", "id", n.ID(), "value", n.String())
		}
	}

	fmt.Fprintf(out, "dz/dx (x.grad) = %g\n", x.Grad())
	fmt.Fprintf(out, "dz/dy (y.grad) = %g\n", y.Grad())
	return nil
}
