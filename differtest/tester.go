package differtest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nihei9/rwsdiff/differ"
	"github.com/nihei9/rwsdiff/rws"
	"github.com/nihei9/rwsdiff/tree"
)

// ScenarioWithMetadata pairs a parsed scenario with the file it came from,
// or the error hit while loading it, mirroring the teacher's
// tester.TestCaseWithMetadata.
type ScenarioWithMetadata struct {
	Scenario *Scenario
	FilePath string
	Error    error
}

// ListScenarios walks path (a file or a directory) and parses every
// scenario fixture it finds.
func ListScenarios(path string) []*ScenarioWithMetadata {
	fi, err := os.Stat(path)
	if err != nil {
		return []*ScenarioWithMetadata{{FilePath: path, Error: err}}
	}
	if !fi.IsDir() {
		s, err := ParseScenarioFile(path)
		return []*ScenarioWithMetadata{{Scenario: s, FilePath: path, Error: err}}
	}

	es, err := os.ReadDir(path)
	if err != nil {
		return []*ScenarioWithMetadata{{FilePath: path, Error: err}}
	}
	var out []*ScenarioWithMetadata
	for _, e := range es {
		out = append(out, ListScenarios(filepath.Join(path, e.Name()))...)
	}
	return out
}

// Result is the outcome of running a single scenario.
type Result struct {
	FilePath string
	Name     string
	Error    error
	Got      Expect
	Want     Expect
}

func (r *Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("FAIL %v (%v): %v", r.FilePath, r.Name, r.Error)
	}
	return fmt.Sprintf("PASS %v (%v)", r.FilePath, r.Name)
}

// Tester runs every scenario in Cases through the real pipeline.
type Tester struct {
	Cases []*ScenarioWithMetadata
}

func (t *Tester) Run() []*Result {
	var rs []*Result
	for _, c := range t.Cases {
		rs = append(rs, runScenario(c))
	}
	return rs
}

func labelEqual(old, new differ.Term[string, string]) bool {
	return old.Ann.Base.Base == new.Ann.Base.Base
}

func labelFn(ann string, _ []tree.Shape) string { return ann }

func runScenario(c *ScenarioWithMetadata) *Result {
	if c.Error != nil {
		return &Result{FilePath: c.FilePath, Error: c.Error}
	}
	s := c.Scenario

	oldTree := s.Old.ToTree()
	newTree := s.New.ToTree()

	diffs, err := differ.Diff(differ.DefaultOptions(), labelFn, labelEqual, oldTree, newTree)
	if err != nil {
		return &Result{FilePath: c.FilePath, Name: s.Name, Error: err}
	}

	got := summarize(diffs)
	if got != s.Expect {
		return &Result{
			FilePath: c.FilePath,
			Name:     s.Name,
			Error:    fmt.Errorf("diff shape mismatch"),
			Got:      got,
			Want:     s.Expect,
		}
	}
	return &Result{FilePath: c.FilePath, Name: s.Name, Got: got, Want: s.Expect}
}

func summarize[T any](diffs []rws.Diff[T]) Expect {
	var e Expect
	for _, d := range diffs {
		switch v := d.(type) {
		case rws.Patch[T]:
			switch v.Kind {
			case rws.KindInsert:
				e.Inserts++
			case rws.KindDelete:
				e.Deletes++
			}
		case rws.Aligned[T]:
			e.Matches++
			sub := summarize(v.Children)
			e.Inserts += sub.Inserts
			e.Deletes += sub.Deletes
			e.Matches += sub.Matches
		}
	}
	return e
}
