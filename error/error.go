// Package error holds the typed errors the ambient layers around the RWS
// core raise — the core itself is total and has no recoverable error
// conditions (spec.md §7). The shape here mirrors the teacher's
// error.SpecError: a cause plus a single locating field.
package error

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid tunable (p, q, or d) supplied to the
// pipeline.
type ConfigError struct {
	Cause error
	Param string
}

func (e *ConfigError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("error: %v", e.Cause)
	}
	return fmt.Sprintf("%v: error: %v", e.Param, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ConfigErrors is a non-empty collection of ConfigErrors, returned when
// one or more tunables are invalid, with one entry per invalid tunable.
type ConfigErrors []*ConfigError

func (es ConfigErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// TreeError reports a malformed tree-spec file or differtest fixture,
// located by a dotted child-index path the way the teacher's
// spec/test.Tree.path() locates a mismatched node.
type TreeError struct {
	Cause error
	Path  string
}

func (e *TreeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error: %v", e.Cause)
	}
	return fmt.Sprintf("%v: error: %v", e.Path, e.Cause)
}

func (e *TreeError) Unwrap() error {
	return e.Cause
}
