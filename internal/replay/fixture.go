package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a scripted
// transcript plus the expected per-turn outcomes.
type Fixture struct {
	Description     string                  `json:"description"`
	Inputs          []FixtureInput          `json:"inputs"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureInput is one scripted text input.
type FixtureInput struct {
	TurnID string `json:"turn_id"`
	Text   string `json:"text"`
}

// FixtureExpectedResult captures the expected action ("scored" or "echoed")
// and session status after the turn.
type FixtureExpectedResult struct {
	TurnID string `json:"turn_id"`
	Action string `json:"action"`
	Status string `json:"status"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToInput converts a FixtureInput to a domain Input.
func (fi *FixtureInput) ToInput() Input {
	return Input{
		TurnID: fi.TurnID,
		Text:   fi.Text,
	}
}

// #endregion fixture-loader
