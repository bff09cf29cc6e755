package archive

import "time"

// #region session-record
// SessionRecord is one row of the sessions table.
type SessionRecord struct {
	SessionID  string
	Locked     bool
	LockReason string
	CreatedAt  time.Time
}
// #endregion session-record

// #region session-info
// SessionInfo pairs a session row with aggregates over its archived events.
type SessionInfo struct {
	SessionRecord
	Events    int
	MeanDrift float64
}
// #endregion session-info
