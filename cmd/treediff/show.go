package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/rwsdiff/tree"
	"github.com/nihei9/rwsdiff/treeio"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <tree-spec path>",
		Short:   "Print a tree-spec file in ruled-line form",
		Example: `  treediff show tree.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	n, err := treeio.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read tree: %w", err)
	}
	printTree(os.Stdout, n, "", "")
	return nil
}

func printTree(w io.Writer, n *tree.Node[string], ruledLine, childPrefix string) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%v%v\n", ruledLine, n.Ann)

	num := len(n.Children)
	for i, c := range n.Children {
		var line string
		if i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}
		var prefix string
		if i < num-1 {
			prefix = "│  "
		} else {
			prefix = "   "
		}
		printTree(w, c, childPrefix+line, childPrefix+prefix)
	}
}
