package engine

// #region status

// Status reports the session's lifecycle position in a summary.
type Status string

const (
	StatusEmpty  Status = "EMPTY"
	StatusActive Status = "ACTIVE"
	StatusLocked Status = "LOCKED"
)

// #endregion

// #region event

// Event is the immutable record of one analyzed input. Events are appended
// in order and never mutated after construction.
type Event struct {
	Index             int
	Text              string
	PG                float64
	PE                float64
	D                 float64
	X                 float64
	Drift             float64
	Shock             bool
	Circular          bool
	HardLockTriggered bool
	Notes             []string
}

// ToMap projects the event field-for-field into a plain key/value structure
// for serialization or display by the caller.
func (e Event) ToMap() map[string]any {
	notes := make([]string, len(e.Notes))
	copy(notes, e.Notes)
	return map[string]any{
		"index":               e.Index,
		"text":                e.Text,
		"PG":                  e.PG,
		"PE":                  e.PE,
		"D":                   e.D,
		"X":                   e.X,
		"drift":               e.Drift,
		"shock":               e.Shock,
		"circular":            e.Circular,
		"hard_lock_triggered": e.HardLockTriggered,
		"notes":               notes,
	}
}

// #endregion

// #region report

// Report is the read-only aggregate view over a session's events.
type Report struct {
	EventsAnalyzed      int
	MeanDrift           float64
	Shocks              int
	CircularityWarnings int
	HardLocks           int
	FinalX              *float64 // nil when the session has no events
	FinalStatus         Status
}

// #endregion
