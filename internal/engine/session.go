package engine

// #region imports
import "fmt"

// #endregion

// #region constants

// shockCompression is the fixed demo factor applied to an event's magnitude
// when the shock detector fires. Not adaptive.
const shockCompression = 0.5

// hardLockReason is the fixed explanation recorded when the session locks.
const hardLockReason = "Demo hard-lock: self-declared moral perfection / infallibility."

// #endregion

// #region session

// Session is the stateful container for one evaluation run. It owns the
// ordered event history and the one-way lock flag. Callers must serialize
// access; a Session supports no concurrent use.
type Session struct {
	events     []Event
	locked     bool
	lockReason string

	// lastMagnitude holds the pre-compression X of the most recent scored
	// event. nil until the first scored event, so the "first drift is zero"
	// rule needs no sentinel value. Echo events never touch it.
	lastMagnitude *float64
}

// NewSession returns an unlocked session with empty history.
func NewSession() *Session {
	return &Session{}
}

// #endregion

// #region analyze

// Analyze runs one input through the scoring pipeline and appends the
// resulting event. Once the session is locked, inputs are acknowledged with
// echo events instead of being scored. Analyze accepts any string and never
// fails.
func (s *Session) Analyze(text string) Event {
	if s.locked && len(s.events) > 0 {
		return s.echo(text)
	}

	var notes []string

	// 1) Core scoring
	pg, pe := Score(text)
	d := pg - pe
	x := abs(d)

	// 2) Drift, measured against the previous scored event's pre-compression
	// magnitude. The reference magnitude is stored before shock compression
	// runs: drift tracks the uncompressed magnitude while the emitted X may
	// be compressed.
	drift := 0.0
	if s.lastMagnitude != nil {
		drift = x - *s.lastMagnitude
	}
	pre := x
	s.lastMagnitude = &pre

	// 3) Shock detection and magnitude compression
	shock := shockDetector.Match(text)
	if shock {
		before := x
		x *= shockCompression
		notes = append(notes, fmt.Sprintf(
			"Shock detected: compressed X from %.3f to %.3f (demo factor %.1f).",
			before, x, shockCompression))
	}

	// 4) Circularity and hard-lock
	circular := circularDetector.Match(text)
	if circular {
		notes = append(notes, "Circular moral authority pattern detected (demo heuristic).")
	}

	hardLock := hardLockDetector.Match(text)
	if hardLock {
		s.locked = true
		s.lockReason = hardLockReason
		notes = append(notes, "HARD LOCK: self-reference / moral perfection claim detected.")
		notes = append(notes, "Session is now permanently locked until full reinitialization.")
	}

	event := Event{
		Index:             len(s.events) + 1,
		Text:              text,
		PG:                pg,
		PE:                pe,
		D:                 d,
		X:                 x,
		Drift:             drift,
		Shock:             shock,
		Circular:          circular,
		HardLockTriggered: hardLock,
		Notes:             notes,
	}
	s.events = append(s.events, event)
	return event
}

// #endregion

// #region echo

// echo appends a terminal event while locked. The numeric fields carry
// forward from the last event unchanged; no classifier, tracker, or detector
// runs, and lastMagnitude is left untouched.
func (s *Session) echo(text string) Event {
	last := s.events[len(s.events)-1]
	event := Event{
		Index:             len(s.events) + 1,
		Text:              text,
		PG:                last.PG,
		PE:                last.PE,
		D:                 last.D,
		X:                 last.X,
		Drift:             0.0,
		Shock:             false,
		Circular:          true,
		HardLockTriggered: true,
		Notes:             []string{"Session already in HARD LOCK state; returning terminal event."},
	}
	s.events = append(s.events, event)
	return event
}

// #endregion

// #region accessors

// Locked reports whether the session has entered the terminal state.
func (s *Session) Locked() bool {
	return s.locked
}

// LockReason returns the explanation recorded at lock time, or "" while the
// session is active.
func (s *Session) LockReason() string {
	return s.lockReason
}

// Events returns a copy of the ordered event history.
func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// #endregion

// #region helpers

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion
