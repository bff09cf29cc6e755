package replay

import (
	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/engine"
)

// #region types

// Input represents a single recorded text input for replay.
type Input struct {
	TurnID string
	Text   string
}

// Action labels for how a turn was handled by the session.
const (
	ActionScored = "scored"
	ActionEchoed = "echoed"
)

// Result captures the outcome of replaying one input.
type Result struct {
	TurnID string
	Action string // "scored" | "echoed"
	Status engine.Status
	Event  engine.Event
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns          int
	Scored              int
	Echoed              int
	Shocks              int
	CircularityWarnings int
	HardLocks           int
	FinalStatus         engine.Status
}

// #endregion types

// #region replay

// Replay runs the scripted inputs through a fresh session and records the
// per-turn outcome. The engine is deterministic, so replaying the same
// transcript always yields identical results. Operates entirely in-memory.
func Replay(inputs []Input) []Result {
	session := engine.NewSession()
	results := make([]Result, 0, len(inputs))

	for _, in := range inputs {
		// Lock state before the call decides the action label: the locking
		// turn itself is still scored, only later turns are echoed.
		wasLocked := session.Locked()

		ev := session.Analyze(in.Text)

		action := ActionScored
		if wasLocked {
			action = ActionEchoed
		}

		results = append(results, Result{
			TurnID: in.TurnID,
			Action: action,
			Status: session.Summary().FinalStatus,
			Event:  ev,
		})
	}

	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{
		TotalTurns:  len(results),
		FinalStatus: engine.StatusEmpty,
	}
	for _, r := range results {
		switch r.Action {
		case ActionScored:
			s.Scored++
		case ActionEchoed:
			s.Echoed++
		}
		if r.Event.Shock {
			s.Shocks++
		}
		if r.Event.Circular {
			s.CircularityWarnings++
		}
		if r.Event.HardLockTriggered {
			s.HardLocks++
		}
	}
	if len(results) > 0 {
		s.FinalStatus = results[len(results)-1].Status
	}
	return s
}

// #endregion replay
