package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/rwsdiff/differ"
	"github.com/nihei9/rwsdiff/render"
	"github.com/nihei9/rwsdiff/tree"
	"github.com/nihei9/rwsdiff/treeio"
)

var diffFlags = struct {
	p *int
	q *int
	d *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "diff <old tree-spec path> <new tree-spec path>",
		Short:   "Compute an edit script between two tree-spec files",
		Example: `  treediff diff old.json new.json`,
		Args:    cobra.ExactArgs(2),
		RunE:    runDiff,
	}
	diffFlags.p = cmd.Flags().Int("p", differ.DefaultOptions().P, "pq-gram stem size")
	diffFlags.q = cmd.Flags().Int("q", differ.DefaultOptions().Q, "pq-gram base size")
	diffFlags.d = cmd.Flags().Int("d", differ.DefaultOptions().D, "feature vector dimension")
	rootCmd.AddCommand(cmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldTree, err := treeio.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read old tree: %w", err)
	}
	newTree, err := treeio.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("cannot read new tree: %w", err)
	}

	opts := differ.Options{P: *diffFlags.p, Q: *diffFlags.q, D: *diffFlags.d}
	diffs, err := differ.Diff(opts, stringLabel, equalStringLabel, oldTree, newTree)
	if err != nil {
		return err
	}

	render.Diffs(os.Stdout, diffs, termLabel)
	return nil
}

func stringLabel(ann string, _ []tree.Shape) string { return ann }

func equalStringLabel(old, new differ.Term[string, string]) bool {
	return old.Ann.Base.Base == new.Ann.Base.Base
}

func termLabel(n differ.Term[string, string]) string {
	return n.Ann.Base.Base
}
