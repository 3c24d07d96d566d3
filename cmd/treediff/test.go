package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/rwsdiff/differtest"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <scenario file path>|<scenario directory path>",
		Short:   "Run end-to-end diff scenarios",
		Example: `  treediff test scenarios`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	cs := differtest.ListScenarios(args[0])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil && c.Scenario == nil {
			fmt.Fprintf(os.Stderr, "failed to read a scenario file: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("cannot run test")
	}

	t := &differtest.Tester{Cases: cs}
	rs := t.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("test failed")
	}
	return nil
}
