package differtest

import (
	"strings"
	"testing"
)

func TestRunScenarioPass(t *testing.T) {
	src := `{
		"name": "add one child",
		"old": {"label": "a", "children": [{"label": "b"}]},
		"new": {"label": "a", "children": [{"label": "b"}, {"label": "c"}]},
		"expect": {"inserts": 1, "deletes": 0, "matches": 2}
	}`
	s, err := ParseScenario(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	r := runScenario(&ScenarioWithMetadata{Scenario: s, FilePath: "inline"})
	if r.Error != nil {
		t.Fatalf("expected scenario to pass, got %v (got=%+v want=%+v)", r.Error, r.Got, r.Want)
	}
}

func TestRunScenarioFail(t *testing.T) {
	src := `{
		"name": "wrong expectation",
		"old": {"label": "a", "children": [{"label": "b"}]},
		"new": {"label": "a", "children": [{"label": "b"}, {"label": "c"}]},
		"expect": {"inserts": 0, "deletes": 0, "matches": 2}
	}`
	s, err := ParseScenario(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	r := runScenario(&ScenarioWithMetadata{Scenario: s, FilePath: "inline"})
	if r.Error == nil {
		t.Fatalf("expected scenario to fail on mismatched expectation")
	}
}

func TestListScenariosMissingPath(t *testing.T) {
	cases := ListScenarios("/nonexistent/path/does/not/exist.json")
	if len(cases) != 1 || cases[0].Error == nil {
		t.Fatalf("expected a single error result, got %+v", cases)
	}
}
