// Package differtest implements the end-to-end scenario test harness
// spec.md §8 describes, adapted from the teacher's tester.Tester and
// spec/test.ParseTestCase: a scenario fixture names an old tree, a new
// tree, and the expected shape of the resulting diff, and the harness
// runs the real pipeline (differ.Diff) over it and reports a pass/fail
// summary per fixture.
package differtest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	derr "github.com/nihei9/rwsdiff/error"
	"github.com/nihei9/rwsdiff/treeio"
)

// Expect is the expected shape of a diff result: how many top-level and
// nested Insert/Delete/Aligned nodes the pipeline should produce. It
// deliberately checks aggregate counts rather than the full diff tree, the
// way spec.md §8's scenarios are phrased ("X matches", "N deletes") rather
// than as literal expected output.
type Expect struct {
	Inserts int `json:"inserts"`
	Deletes int `json:"deletes"`
	Matches int `json:"matches"`
}

// Scenario is a single fixture: two trees and the expected diff shape
// between them.
type Scenario struct {
	Name   string      `json:"name"`
	Old    treeio.Node `json:"old"`
	New    treeio.Node `json:"new"`
	Expect Expect      `json:"expect"`
}

// ParseScenario decodes a scenario fixture from r.
func ParseScenario(r io.Reader) (*Scenario, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := json.Unmarshal(d, &s); err != nil {
		return nil, &derr.TreeError{Cause: err}
	}
	return &s, nil
}

// ParseScenarioFile opens path and decodes it as a scenario fixture.
func ParseScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scenario file %s: %w", path, err)
	}
	defer f.Close()
	return ParseScenario(f)
}
