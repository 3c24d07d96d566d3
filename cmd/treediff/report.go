package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nihei9/rwsdiff/compressor"
	"github.com/nihei9/rwsdiff/differ"
	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
	"github.com/nihei9/rwsdiff/treeio"
)

func init() {
	cmd := &cobra.Command{
		Use:     "report <old tree-spec directory> <new tree-spec directory>",
		Short:   "Diff every same-named tree-spec file pair and compress the alignments into one table",
		Example: `  treediff report old new`,
		Args:    cobra.ExactArgs(2),
		RunE:    runReport,
	}
	rootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	oldDir, newDir := args[0], args[1]

	names, err := commonTreeFiles(oldDir, newDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errors.New("no same-named tree-spec files found in both directories")
	}

	var rawRows [][]int
	maxCols := 0
	for _, name := range names {
		oldTree, err := treeio.ReadFile(filepath.Join(oldDir, name))
		if err != nil {
			return fmt.Errorf("cannot read old tree %s: %w", name, err)
		}
		newTree, err := treeio.ReadFile(filepath.Join(newDir, name))
		if err != nil {
			return fmt.Errorf("cannot read new tree %s: %w", name, err)
		}

		row := alignTopLevel(oldTree, newTree)
		if len(row) > maxCols {
			maxCols = len(row)
		}
		rawRows = append(rawRows, row)
	}

	rows := make([]compressor.AlignmentRow, len(rawRows))
	for i, r := range rawRows {
		padded := make(compressor.AlignmentRow, maxCols)
		for j := range padded {
			padded[j] = -1
		}
		copy(padded, r)
		rows[i] = padded
	}

	report, err := compressor.CompressAlignments(names, rows)
	if err != nil {
		return fmt.Errorf("cannot compress alignment report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%v files, %v columns, %v ints stored (vs %v uncompressed)\n",
		len(names), report.Cols, report.StoredSize(), len(names)*report.Cols)
	for i, name := range names {
		fmt.Fprintf(os.Stdout, "%v:", name)
		for col := 0; col < report.Cols; col++ {
			v, err := report.Lookup(i, col)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, " %v", v)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// commonTreeFiles returns the sorted set of file names present in both
// directories.
func commonTreeFiles(oldDir, newDir string) ([]string, error) {
	oldEntries, err := os.ReadDir(oldDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", oldDir, err)
	}
	newNames := map[string]bool{}
	newEntries, err := os.ReadDir(newDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", newDir, err)
	}
	for _, e := range newEntries {
		newNames[e.Name()] = true
	}

	var names []string
	for _, e := range oldEntries {
		if e.IsDir() {
			continue
		}
		if newNames[e.Name()] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// alignTopLevel diffs two trees and returns, for each old-root child index,
// the new-root child index it matched to, or -1 when deleted.
func alignTopLevel(oldTree, newTree *tree.Node[string]) compressor.AlignmentRow {
	opts := differ.DefaultOptions()
	oldDecorated := differ.Decorate[string](opts, stringLabel, oldTree)
	newDecorated := differ.Decorate[string](opts, stringLabel, newTree)

	cmp := differ.NewComparator[string, string](equalStringLabel)
	diffs := rws.RWS(cmp, differ.FeatureOf[string, string], []differ.Term[string, string]{oldDecorated}, []differ.Term[string, string]{newDecorated})

	var children []rws.Diff[differ.Term[string, string]]
	if len(diffs) == 1 {
		if aligned, ok := diffs[0].(rws.Aligned[differ.Term[string, string]]); ok {
			children = aligned.Children
		}
	}

	return compressor.BuildAlignmentRow(len(oldDecorated.Children), oldDecorated.Children, newDecorated.Children, children)
}
