package autodiff

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidGraph reports a malformed node: bad operand index or arity.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrCyclicGraph reports a node that transitively references itself.
	ErrCyclicGraph = errors.New("cyclic graph")
)

// GraphError wraps a structural problem found by Graph.Validate.
type GraphError struct {
	Kind error
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &GraphError{Kind: ErrInvalidGraph, Msg: fmt.Sprintf(format, args...)}
}

func cycleError(path []NodeID) error {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return &GraphError{Kind: ErrCyclicGraph, Msg: "cycle: " + strings.Join(parts, " -> ")}
}
