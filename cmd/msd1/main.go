package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/archive"
	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/engine"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "archive the session to this SQLite database (optional)")
	flag.Parse()

	var store *archive.Store
	var sessionID string
	if *dbPath != "" {
		var err error
		store, err = archive.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open db: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		rec, err := store.CreateSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "create session: %v\n", err)
			os.Exit(1)
		}
		sessionID = rec.SessionID
		log.Printf("[MSD1] archiving session %s to %s", sessionID, *dbPath)
	}

	session := engine.NewSession()
	fmt.Println("EDEN MSD-1 demo — type text to analyze, or 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println("\nExiting.")
			break
		}
		raw := scanner.Text()
		if cmd := strings.ToLower(strings.TrimSpace(raw)); cmd == "quit" || cmd == "exit" {
			break
		}

		event := session.Analyze(raw)
		printEvent(event)

		if store != nil {
			if err := store.AppendEvent(sessionID, event); err != nil {
				log.Printf("[MSD1] failed to archive event %d: %v", event.Index, err)
			}
			if event.HardLockTriggered {
				if err := store.SetLock(sessionID, session.LockReason()); err != nil {
					log.Printf("[MSD1] failed to record lock: %v", err)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nSession summary:")
	printSummary(session.Summary())
}

// #endregion main

// #region output

func printEvent(e engine.Event) {
	fmt.Printf("[event %d] PG=%.3f PE=%.3f D=%.3f X=%.3f drift=%.3f\n",
		e.Index, e.PG, e.PE, e.D, e.X, e.Drift)
	if e.HardLockTriggered {
		fmt.Println("  >> HARD LOCK TRIGGERED <<")
	}
	for _, n := range e.Notes {
		fmt.Println("   -", n)
	}
}

func printSummary(r engine.Report) {
	fmt.Printf("  events analyzed:      %d\n", r.EventsAnalyzed)
	fmt.Printf("  mean drift:           %.3f\n", r.MeanDrift)
	fmt.Printf("  shocks:               %d\n", r.Shocks)
	fmt.Printf("  circularity warnings: %d\n", r.CircularityWarnings)
	fmt.Printf("  hard locks:           %d\n", r.HardLocks)
	if r.FinalX != nil {
		fmt.Printf("  final X:              %.3f\n", *r.FinalX)
	} else {
		fmt.Printf("  final X:              —\n")
	}
	fmt.Printf("  final status:         %s\n", r.FinalStatus)
}

// #endregion output
