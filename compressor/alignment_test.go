package compressor

import (
	"testing"

	"github.com/nihei9/rwsdiff/differ"
	"github.com/nihei9/rwsdiff/feature"
	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
)

func TestBuildAlignmentRowMatchAndDelete(t *testing.T) {
	oldA := tree.New(feature.Decorated[string, string]{})
	oldB := tree.New(feature.Decorated[string, string]{})
	newA := tree.New(feature.Decorated[string, string]{})

	oldChildren := []differ.Term[string, string]{oldA, oldB}
	newChildren := []differ.Term[string, string]{newA}

	children := []rws.Diff[differ.Term[string, string]]{
		rws.Align[differ.Term[string, string]](oldA, newA, nil),
		rws.DeleteOf[differ.Term[string, string]](oldB),
	}

	row := BuildAlignmentRow(len(oldChildren), oldChildren, newChildren, children)
	if len(row) != 2 {
		t.Fatalf("expected row length 2, got %v", len(row))
	}
	if row[0] != 0 {
		t.Fatalf("expected oldA to map to newA (index 0), got %v", row[0])
	}
	if row[1] != -1 {
		t.Fatalf("expected oldB to map to -1 (deleted), got %v", row[1])
	}
}

func TestCompressAlignments(t *testing.T) {
	rows := []AlignmentRow{
		{0, -1, 1},
		{-1, 0, -1},
	}
	report, err := CompressAlignments([]string{"s1", "s2"}, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, row := range rows {
		for col, want := range row {
			got, err := report.Lookup(i, col)
			if err != nil {
				t.Fatalf("unexpected lookup error: %v", err)
			}
			if got != want {
				t.Fatalf("row %v col %v: got %v, want %v", i, col, got, want)
			}
		}
	}
}

func TestCompressAlignmentsRejectsEmpty(t *testing.T) {
	if _, err := CompressAlignments(nil, nil); err == nil {
		t.Fatalf("expected an error for an empty batch")
	}
}
