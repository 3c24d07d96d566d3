package differ

import (
	"testing"

	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
)

func labelOf(ann string, _ []tree.Shape) string { return ann }

func equalLabel(old, new Term[string, string]) bool {
	return old.Ann.Base.Base == new.Ann.Base.Base
}

// countDiffs walks a diff list (and its Aligned children) and totals
// Insert/Delete/Aligned counts.
func countDiffs(diffs []rws.Diff[Term[string, string]]) (inserts, deletes, matches int) {
	for _, d := range diffs {
		switch v := d.(type) {
		case rws.Patch[Term[string, string]]:
			if v.Kind == rws.KindInsert {
				inserts++
			} else if v.Kind == rws.KindDelete {
				deletes++
			}
		case rws.Aligned[Term[string, string]]:
			matches++
			ci, cd, cm := countDiffs(v.Children)
			inserts += ci
			deletes += cd
			matches += cm
		}
	}
	return
}

func TestDiffIdenticalTrees(t *testing.T) {
	old := tree.New("a", tree.New("b"), tree.New("c"))
	new := tree.New("a", tree.New("b"), tree.New("c"))

	diffs, err := Diff(DefaultOptions(), labelOf, equalLabel, old, new)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inserts, deletes, matches := countDiffs(diffs)
	if inserts != 0 || deletes != 0 {
		t.Fatalf("expected no inserts/deletes for identical trees, got inserts=%v deletes=%v", inserts, deletes)
	}
	// root + b + c = 3 matches.
	if matches != 3 {
		t.Fatalf("expected 3 matches, got %v", matches)
	}
}

func TestDiffCompletelyDifferentRoots(t *testing.T) {
	old := tree.New("a", tree.New("b"))
	new := tree.New("z", tree.New("y"))

	diffs, err := Diff(DefaultOptions(), labelOf, equalLabel, old, new)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("expected an Insert and a Delete at the top level, got %v", diffs)
	}
	ins, ok := diffs[0].(rws.Patch[Term[string, string]])
	if !ok || ins.Kind != rws.KindInsert {
		t.Fatalf("expected Insert first, got %+v", diffs[0])
	}
	del, ok := diffs[1].(rws.Patch[Term[string, string]])
	if !ok || del.Kind != rws.KindDelete {
		t.Fatalf("expected Delete second, got %+v", diffs[1])
	}
}

func TestDiffOneChildAdded(t *testing.T) {
	old := tree.New("a", tree.New("b"))
	new := tree.New("a", tree.New("b"), tree.New("c"))

	diffs, err := Diff(DefaultOptions(), labelOf, equalLabel, old, new)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inserts, deletes, matches := countDiffs(diffs)
	if inserts != 1 {
		t.Fatalf("expected 1 insert (node c), got %v", inserts)
	}
	if deletes != 0 {
		t.Fatalf("expected 0 deletes, got %v", deletes)
	}
	if matches != 2 {
		t.Fatalf("expected 2 matches (a, b), got %v", matches)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := (Options{P: 2, Q: 3, D: 16}).Validate(); err != nil {
		t.Fatalf("expected valid options to pass, got %v", err)
	}
	if err := (Options{P: -1, Q: 3, D: 16}).Validate(); err == nil {
		t.Fatalf("expected negative P to be rejected")
	}
	if err := (Options{P: 2, Q: 3, D: 0}).Validate(); err == nil {
		t.Fatalf("expected zero D to be rejected")
	}
}
