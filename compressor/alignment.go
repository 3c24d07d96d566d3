package compressor

import (
	"fmt"

	"github.com/nihei9/rwsdiff/differ"
	"github.com/nihei9/rwsdiff/pqgram"
	"github.com/nihei9/rwsdiff/rws"
)

// AlignmentRow records, for each old-tree child index, the new-tree child
// index it matched to, or -1 when the old child was deleted.
type AlignmentRow []int

// BuildAlignmentRow converts one scenario's top-level diff children into an
// AlignmentRow of length cols, using pointer identity on the decorated
// Term values to recover each matched term's original sibling position.
func BuildAlignmentRow[L pqgram.Label, A any](cols int, oldChildren, newChildren []differ.Term[L, A], children []rws.Diff[differ.Term[L, A]]) AlignmentRow {
	oldIndexOf := make(map[differ.Term[L, A]]int, len(oldChildren))
	for i, c := range oldChildren {
		oldIndexOf[c] = i
	}
	newIndexOf := make(map[differ.Term[L, A]]int, len(newChildren))
	for i, c := range newChildren {
		newIndexOf[c] = i
	}

	row := make(AlignmentRow, cols)
	for i := range row {
		row[i] = -1
	}
	for _, d := range children {
		switch v := d.(type) {
		case rws.Aligned[differ.Term[L, A]]:
			oi, ok := oldIndexOf[v.Old]
			if !ok {
				continue
			}
			if ni, ok := newIndexOf[v.New]; ok {
				row[oi] = ni
			}
		case rws.Patch[differ.Term[L, A]]:
			if v.Kind != rws.KindDelete {
				continue
			}
			if oi, ok := oldIndexOf[v.Old]; ok {
				row[oi] = -1
			}
		}
	}
	return row
}

// Report is a batch of scenario alignment rows compressed into a single
// row-displaced table, the same technique the teacher's parser tables use
// to compress many states' mostly-empty transition rows into one dense
// array.
type Report struct {
	Names []string
	Cols  int
	table *RowDisplacementTable
}

// CompressAlignments builds a Report from one named AlignmentRow per
// scenario. Every row must already have the same length; callers pad
// shorter scenarios with trailing -1 entries before calling this.
func CompressAlignments(names []string, rows []AlignmentRow) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no alignment rows to compress")
	}
	cols := len(rows[0])
	entries := make([]int, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("scenario %v: row length %v does not match expected %v", names[i], len(r), cols)
		}
		entries = append(entries, r...)
	}

	orig, err := NewOriginalTable(entries, cols)
	if err != nil {
		return nil, err
	}

	tab := NewRowDisplacementTable(-1)
	if err := tab.Compress(orig); err != nil {
		return nil, err
	}

	return &Report{Names: names, Cols: cols, table: tab}, nil
}

// Lookup returns the new-tree child index the old-tree child at oldChildIdx
// matched to in the scenario at scenarioIdx, or -1 if it was deleted.
func (r *Report) Lookup(scenarioIdx, oldChildIdx int) (int, error) {
	return r.table.Lookup(scenarioIdx, oldChildIdx)
}

// StoredSize returns the length of the compressed table's entry array,
// versus the len(Names)*Cols the uncompressed table would occupy. The
// table's Bounds array (same length) and per-row displacements are not
// counted.
func (r *Report) StoredSize() int {
	return len(r.table.Entries)
}
