// Package differ wires the five core operations (tree.Label,
// pqgram.Decorate, feature.Decorate, kdtree, rws.RWS) into the pipeline
// spec.md §2 describes and exposes the single entry point the rest of the
// repository (the CLI, differtest) calls to diff two trees.
package differ

import (
	"errors"
	"fmt"

	derr "github.com/nihei9/rwsdiff/error"
	"github.com/nihei9/rwsdiff/feature"
	"github.com/nihei9/rwsdiff/pqgram"
	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
)

// Term is the concrete value rws.RWS matches: a tree node whose annotation
// has already been carried through labeling, pq-gram decoration, and
// feature vectorization.
type Term[L pqgram.Label, A any] = *tree.Node[feature.Decorated[L, A]]

// FeatureOf extracts a Term's own feature vector — the extractor function
// rws.RWS needs, per spec.md §4.5 step 1.
func FeatureOf[L pqgram.Label, A any](n Term[L, A]) feature.Vector {
	return n.Ann.Label
}

// EqualFunc decides whether two decorated nodes are similar enough to
// attempt an alignment, independent of their subtrees — e.g. same label,
// same leaf value. It is the non-recursive half of the "language-specific
// recursive comparator" spec.md §1 and §6 name as an external
// collaborator; NewComparator supplies the recursive half.
type EqualFunc[L pqgram.Label, A any] func(old, new Term[L, A]) bool

// NewComparator builds an rws.Comparator out of eq: a pair is accepted
// exactly when eq holds, and accepting it immediately recurses into the
// pair's children via rws.RWS, building the Aligned diff's Children.
// This is the recursive-descent step spec.md §3 assigns to the
// comparator rather than to the core ("Replace... deliberately not used
// by this core; the comparator is responsible for descending into
// matched pairs").
func NewComparator[L pqgram.Label, A any](eq EqualFunc[L, A]) rws.Comparator[Term[L, A]] {
	var cmp rws.Comparator[Term[L, A]]
	cmp = func(old, new Term[L, A]) (rws.Diff[Term[L, A]], bool) {
		if !eq(old, new) {
			return nil, false
		}
		children := rws.RWS[Term[L, A]](cmp, FeatureOf[L, A], old.Children, new.Children)
		return rws.Align[Term[L, A]](old, new, children), true
	}
	return cmp
}

// Options bundles the RWS pipeline's tunables. Typical literature values
// are p=2, q=3, d=10-20 (spec.md §6).
type Options struct {
	P int
	Q int
	D int
}

// DefaultOptions returns spec.md §6's typical values.
func DefaultOptions() Options {
	return Options{P: 2, Q: 3, D: 16}
}

// Validate reports every invalid tunable at once, the way the teacher's
// grammar.GrammarBuilder collects every semantic error before returning.
func (o Options) Validate() error {
	var errs derr.ConfigErrors
	if o.P < 0 {
		errs = append(errs, &derr.ConfigError{Cause: errors.New("p must be >= 0"), Param: "p"})
	}
	if o.Q < 0 {
		errs = append(errs, &derr.ConfigError{Cause: errors.New("q must be >= 0"), Param: "q"})
	}
	if o.D <= 0 {
		errs = append(errs, &derr.ConfigError{Cause: errors.New("d must be >= 1"), Param: "d"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Decorate runs a raw tree through labeling, pq-gram decoration, and
// feature vectorization, producing the Term the RWS driver matches on.
// Exposed so callers that need the decorated tree itself — not just the
// final diff — such as the report command's batch alignment tables, can
// reuse the same pipeline Diff runs internally.
func Decorate[L pqgram.Label, A any](opts Options, label tree.LabelFunc[L, A], root *tree.Node[A]) Term[L, A] {
	return feature.FeatureVectorDecorator[L](root, label, opts.P, opts.Q, opts.D)
}

// Diff runs the full pipeline over two raw trees and returns the
// top-level ordered diff list, treating the two roots as single-element
// sibling lists so RWS itself decides whether the roots align.
func Diff[L pqgram.Label, A any](opts Options, label tree.LabelFunc[L, A], eq EqualFunc[L, A], oldRoot, newRoot *tree.Node[A]) ([]rws.Diff[Term[L, A]], error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	oldDecorated := Decorate[L](opts, label, oldRoot)
	newDecorated := Decorate[L](opts, label, newRoot)

	cmp := NewComparator[L, A](eq)
	diffs := rws.RWS[Term[L, A]](cmp, FeatureOf[L, A], []Term[L, A]{oldDecorated}, []Term[L, A]{newDecorated})
	return diffs, nil
}
