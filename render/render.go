// Package render turns an rws.Diff list into the ruled-line text format
// the treediff CLI prints, adapted from the teacher's
// driver.PrintTree/printTree, which walks a parse tree with the same
// box-drawing prefixes.
package render

import (
	"fmt"
	"io"

	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
)

// LabelOf extracts the display label of a term, independent of how deeply
// it has been decorated by the pipeline.
type LabelOf[T any] func(T) string

// Diffs prints an ordered diff list to w: a Delete line prefixed "-", an
// Insert line prefixed "+", and an Aligned pair prefixed " " with its
// Children rendered recursively beneath it, using the teacher's
// ruled-line/box-drawing indentation.
func Diffs[T any](w io.Writer, diffs []rws.Diff[T], label LabelOf[T]) {
	for i, d := range diffs {
		last := i == len(diffs)-1
		renderDiff(w, d, label, "", "", last)
	}
}

func renderDiff[T any](w io.Writer, d rws.Diff[T], label LabelOf[T], ruledLine, childPrefix string, last bool) {
	switch v := d.(type) {
	case rws.Patch[T]:
		switch v.Kind {
		case rws.KindInsert:
			fmt.Fprintf(w, "%v+ %v\n", ruledLine, label(v.New))
		case rws.KindDelete:
			fmt.Fprintf(w, "%v- %v\n", ruledLine, label(v.Old))
		case rws.KindReplace:
			fmt.Fprintf(w, "%v- %v\n", ruledLine, label(v.Old))
			fmt.Fprintf(w, "%v+ %v\n", ruledLine, label(v.New))
		}
	case rws.Aligned[T]:
		fmt.Fprintf(w, "%v  %v\n", ruledLine, label(v.Old))
		num := len(v.Children)
		for i, c := range v.Children {
			childLast := i == num-1
			var line string
			if !childLast {
				line = "├─ "
			} else {
				line = "└─ "
			}
			var prefix string
			if childLast {
				prefix = "   "
			} else {
				prefix = "│  "
			}
			renderDiff(w, c, label, childPrefix+line, childPrefix+prefix, childLast)
		}
	}
}

// TreeLabel is a LabelOf for undecorated tree.Node[string] terms: it
// returns the node's string annotation as is. It does not reach through
// the layered annotations of decorated terms such as differ.Term; callers
// rendering those supply their own LabelOf instead.
func TreeLabel(n *tree.Node[string]) string {
	return n.Ann
}
