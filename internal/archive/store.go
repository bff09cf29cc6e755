package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/johnsonrota5-ui/eden-msd1-demo/internal/engine"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	locked       INTEGER NOT NULL DEFAULT 0,
	lock_reason  TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL,
	idx          INTEGER NOT NULL,
	text         TEXT NOT NULL,
	pg           REAL NOT NULL,
	pe           REAL NOT NULL,
	d            REAL NOT NULL,
	x            REAL NOT NULL,
	drift        REAL NOT NULL,
	shock        INTEGER NOT NULL DEFAULT 0,
	circular     INTEGER NOT NULL DEFAULT 0,
	hard_lock    INTEGER NOT NULL DEFAULT 0,
	notes_json   TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	UNIQUE (session_id, idx),
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_events_session
ON events(session_id, idx);
`
// #endregion schema

// #region store-struct
// Store archives evaluation sessions and their events in SQLite. The engine
// itself stays persistence-free; callers feed events here as they are
// produced.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection. Used by tests.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion close

// #region create-session
// CreateSession inserts a fresh unlocked session row and returns it.
func (s *Store) CreateSession() (SessionRecord, error) {
	rec := SessionRecord{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, locked, lock_reason, created_at)
		 VALUES (?, 0, NULL, ?)`,
		rec.SessionID, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("insert session: %w", err)
	}
	return rec, nil
}
// #endregion create-session

// #region append-event
// AppendEvent archives one engine event under the given session.
func (s *Store) AppendEvent(sessionID string, ev engine.Event) error {
	notesJSON, err := json.Marshal(ev.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO events
		 (session_id, idx, text, pg, pe, d, x, drift, shock, circular, hard_lock, notes_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, ev.Index, ev.Text,
		ev.PG, ev.PE, ev.D, ev.X, ev.Drift,
		boolInt(ev.Shock), boolInt(ev.Circular), boolInt(ev.HardLockTriggered),
		string(notesJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
// #endregion append-event

// #region set-lock
// SetLock marks a session as locked with the given reason. The transition is
// one-way: a session that is already locked keeps its original reason, and
// there is no way to clear the flag.
func (s *Store) SetLock(sessionID, reason string) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET locked = 1, lock_reason = ?
		 WHERE session_id = ? AND locked = 0`,
		reason, sessionID,
	)
	if err != nil {
		return fmt.Errorf("set lock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set lock rows: %w", err)
	}
	if affected == 0 {
		// Either already locked (fine) or unknown session (error).
		var exists int
		if err := s.db.QueryRow(
			`SELECT COUNT(*) FROM sessions WHERE session_id = ?`, sessionID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check session: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("session %s not found", sessionID)
		}
	}
	return nil
}
// #endregion set-lock

// #region get-session
// GetSession reads a single session row.
func (s *Store) GetSession(sessionID string) (SessionRecord, error) {
	var rec SessionRecord
	var locked int
	var reason sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT session_id, locked, lock_reason, created_at
		 FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&rec.SessionID, &locked, &reason, &createdStr)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	rec.Locked = locked != 0
	if reason.Valid {
		rec.LockReason = reason.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}
// #endregion get-session

// #region list-sessions
// ListSessions returns the most recent sessions with event aggregates.
func (s *Store) ListSessions(limit int) ([]SessionInfo, error) {
	rows, err := s.db.Query(
		`SELECT se.session_id, se.locked, se.lock_reason, se.created_at,
		        COUNT(ev.id), COALESCE(AVG(ev.drift), 0)
		 FROM sessions se
		 LEFT JOIN events ev ON ev.session_id = se.session_id
		 GROUP BY se.session_id
		 ORDER BY se.created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var locked int
		var reason sql.NullString
		var createdStr string

		if err := rows.Scan(&info.SessionID, &locked, &reason, &createdStr,
			&info.Events, &info.MeanDrift); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		info.Locked = locked != 0
		if reason.Valid {
			info.LockReason = reason.String
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
// #endregion list-sessions

// #region list-events
// ListEvents returns a session's archived events in index order.
func (s *Store) ListEvents(sessionID string) ([]engine.Event, error) {
	rows, err := s.db.Query(
		`SELECT idx, text, pg, pe, d, x, drift, shock, circular, hard_lock, notes_json
		 FROM events WHERE session_id = ? ORDER BY idx ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []engine.Event
	for rows.Next() {
		var ev engine.Event
		var shock, circular, hardLock int
		var notesJSON string

		if err := rows.Scan(&ev.Index, &ev.Text, &ev.PG, &ev.PE, &ev.D, &ev.X,
			&ev.Drift, &shock, &circular, &hardLock, &notesJSON); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Shock = shock != 0
		ev.Circular = circular != 0
		ev.HardLockTriggered = hardLock != 0
		if err := json.Unmarshal([]byte(notesJSON), &ev.Notes); err != nil {
			return nil, fmt.Errorf("unmarshal notes: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
// #endregion list-events

// #region helpers
func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
// #endregion helpers
