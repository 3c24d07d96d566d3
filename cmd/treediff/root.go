package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treediff",
	Short: "Compute a tree-structured edit script between two labeled trees",
	Long: `treediff matches two labeled, ordered trees with the Random-Walk
Similarity algorithm and prints the resulting edit script:
- diff computes and prints the edit script between two tree-spec files.
- show prints a single tree-spec file in ruled-line form.
- test runs the scenario fixtures under a file or directory.
- report compresses a batch of alignment tables for several diff runs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
