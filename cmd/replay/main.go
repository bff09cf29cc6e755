package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/archive"
	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to archive database (DB mode)")
	sessionID := flag.String("session", "", "session to replay (DB mode, default: most recent)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/sessions.db [--session id]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *sessionID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	inputs := make([]replay.Input, len(f.Inputs))
	for i := range f.Inputs {
		inputs[i] = f.Inputs[i].ToInput()
	}
	results := replay.Replay(inputs)

	expected := make([]string, len(f.ExpectedResults))
	for i, e := range f.ExpectedResults {
		expected[i] = e.Action
	}
	return printComparison(results, expected)
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, sessionID string) int {
	store, err := archive.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	if sessionID == "" {
		sessions, err := store.ListSessions(1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
			return 2
		}
		if len(sessions) == 0 {
			fmt.Fprintln(os.Stderr, "no sessions found in archive")
			return 2
		}
		sessionID = sessions[0].SessionID
	}

	archived, err := store.ListEvents(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list events: %v\n", err)
		return 2
	}
	if len(archived) == 0 {
		fmt.Fprintf(os.Stderr, "session %s has no archived events\n", sessionID)
		return 2
	}

	// Re-run the archived texts through a fresh session and compare against
	// the actions the archive implies: every event after the first
	// hard-lock trigger was echoed.
	inputs := make([]replay.Input, len(archived))
	expected := make([]string, len(archived))
	locked := false
	for i, ev := range archived {
		inputs[i] = replay.Input{
			TurnID: fmt.Sprintf("event-%d", ev.Index),
			Text:   ev.Text,
		}
		if locked {
			expected[i] = replay.ActionEchoed
		} else {
			expected[i] = replay.ActionScored
		}
		if ev.HardLockTriggered {
			locked = true
		}
	}

	results := replay.Replay(inputs)
	return printComparison(results, expected)
}

// #endregion db-mode

// #region output

// printComparison outputs a comparison table and returns the exit code.
func printComparison(results []replay.Result, expected []string) int {
	fmt.Printf("%-12s| %-10s| %-10s| %-8s| %s\n", "Turn", "Expected", "Replayed", "Status", "Match")
	fmt.Printf("%-12s+%-11s+%-11s+%-9s+%s\n",
		"------------", "-----------", "-----------", "---------", "------")

	matches := 0
	total := len(results)
	if len(expected) < total {
		total = len(expected)
	}

	for i := 0; i < total; i++ {
		got := results[i].Action
		match := "DIFF"
		if expected[i] == got {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-10s| %-10s| %-8s| %s\n",
			results[i].TurnID, expected[i], got, results[i].Status, match)
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d turns (%d scored, %d echoed), %d shocks, %d hard locks, final status %s\n",
		s.TotalTurns, s.Scored, s.Echoed, s.Shocks, s.HardLocks, s.FinalStatus)

	diverge := total - matches
	fmt.Printf("Match: %d of %d, %d diverge\n", matches, total, diverge)
	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion output
