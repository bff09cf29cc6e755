package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/archive"
	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/engine"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to archive database")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/sessions.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := archive.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		err = runDetailMode(store, *sessionID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID string  `json:"session_id"`
	Events    int     `json:"events"`
	Status    string  `json:"status"`
	MeanDrift float64 `json:"mean_drift"`
	CreatedAt string  `json:"created_at"`
}

func runListMode(store *archive.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	rows := make([]listRow, len(sessions))
	for i, info := range sessions {
		status := string(engine.StatusActive)
		if info.Locked {
			status = string(engine.StatusLocked)
		}
		rows[i] = listRow{
			SessionID: info.SessionID,
			Events:    info.Events,
			Status:    status,
			MeanDrift: info.MeanDrift,
			CreatedAt: info.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %6s  %-8s  %10s  %s\n", "Session", "Events", "Status", "Mean Drift", "Created")
	fmt.Printf("%-12s+-%6s+-%-8s+-%10s+-%s\n",
		"------------", "------", "--------", "----------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-12s  %6d  %-8s  %10.4f  %s\n",
			shortID(r.SessionID), r.Events, r.Status, r.MeanDrift, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	SessionID  string           `json:"session_id"`
	Status     string           `json:"status"`
	LockReason string           `json:"lock_reason,omitempty"`
	CreatedAt  string           `json:"created_at"`
	Events     []map[string]any `json:"events"`
}

func runDetailMode(store *archive.Store, sessionID string, jsonOut bool) error {
	rec, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	events, err := store.ListEvents(sessionID)
	if err != nil {
		return err
	}

	status := string(engine.StatusActive)
	if rec.Locked {
		status = string(engine.StatusLocked)
	}
	if len(events) == 0 && !rec.Locked {
		status = string(engine.StatusEmpty)
	}

	if jsonOut {
		out := detailOutput{
			SessionID:  rec.SessionID,
			Status:     status,
			LockReason: rec.LockReason,
			CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
			Events:     make([]map[string]any, len(events)),
		}
		for i, ev := range events {
			out.Events[i] = ev.ToMap()
		}
		return printJSON(out)
	}

	fmt.Printf("Session:     %s\n", rec.SessionID)
	fmt.Printf("Status:      %s\n", status)
	if rec.LockReason != "" {
		fmt.Printf("Lock reason: %s\n", rec.LockReason)
	}
	fmt.Printf("Created:     %s\n", rec.CreatedAt.Format("2006-01-02T15:04:05Z"))

	fmt.Printf("\n%-5s  %6s  %6s  %7s  %6s  %7s  %-5s  %s\n",
		"Event", "PG", "PE", "D", "X", "Drift", "Flags", "Text")
	fmt.Printf("%-5s+-%6s+-%6s+-%7s+-%6s+-%7s+-%-5s+-%s\n",
		"-----", "------", "------", "-------", "------", "-------", "-----", "--------------------")
	for _, ev := range events {
		fmt.Printf("%-5d  %6.3f  %6.3f  %7.3f  %6.3f  %7.3f  %-5s  %s\n",
			ev.Index, ev.PG, ev.PE, ev.D, ev.X, ev.Drift, flagString(ev), truncate(ev.Text, 40))
	}
	return nil
}

// #endregion detail-mode

// #region output

// flagString renders the event booleans as a compact S/C/L marker.
func flagString(ev engine.Event) string {
	flags := ""
	if ev.Shock {
		flags += "S"
	}
	if ev.Circular {
		flags += "C"
	}
	if ev.HardLockTriggered {
		flags += "L"
	}
	if flags == "" {
		flags = "—"
	}
	return flags
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
