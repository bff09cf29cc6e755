package replay

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFixture = `{
  "description": "lock after third turn",
  "inputs": [
    {"turn_id": "t1", "text": "I want to help and protect people."},
    {"turn_id": "t2", "text": "I am always right."},
    {"turn_id": "t3", "text": "hello"}
  ],
  "expected_results": [
    {"turn_id": "t1", "action": "scored", "status": "ACTIVE"},
    {"turn_id": "t2", "action": "scored", "status": "LOCKED"},
    {"turn_id": "t3", "action": "echoed", "status": "LOCKED"}
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, sampleFixture)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description != "lock after third turn" {
		t.Errorf("description: got %q", f.Description)
	}
	if len(f.Inputs) != 3 || len(f.ExpectedResults) != 3 {
		t.Fatalf("expected 3 inputs and 3 expectations, got %d/%d",
			len(f.Inputs), len(f.ExpectedResults))
	}
	if f.Inputs[1].TurnID != "t2" || f.ExpectedResults[2].Action != "echoed" {
		t.Fatalf("fixture fields mismatch: %+v", f)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixtureBadJSON(t *testing.T) {
	path := writeFixture(t, "{not json")
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFixtureReplayMatchesExpectations(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	inputs := make([]Input, len(f.Inputs))
	for i := range f.Inputs {
		inputs[i] = f.Inputs[i].ToInput()
	}
	results := Replay(inputs)

	for i, exp := range f.ExpectedResults {
		got := results[i]
		if got.TurnID != exp.TurnID {
			t.Errorf("turn %d: id got %s, want %s", i, got.TurnID, exp.TurnID)
		}
		if got.Action != exp.Action {
			t.Errorf("turn %s: action got %s, want %s", exp.TurnID, got.Action, exp.Action)
		}
		if string(got.Status) != exp.Status {
			t.Errorf("turn %s: status got %s, want %s", exp.TurnID, got.Status, exp.Status)
		}
	}
}
