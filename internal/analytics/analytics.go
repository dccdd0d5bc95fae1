// Package analytics persists product events to a local SQLite database.
// It is an append-only log used for usage reporting and per-user exports;
// losing it is an inconvenience, not an incident.
package analytics

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT NOT NULL,
	event_type TEXT NOT NULL,
	data       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id);
`

// Event is one row of the event log.
type Event struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	EventType string    `db:"event_type" json:"event_type"`
	Data      string    `db:"data" json:"data"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Logger is the event log handle. Safe for concurrent use; sqlx pools
// connections underneath.
type Logger struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the SQLite event log at path and ensures
// the schema exists.
func Open(path string) (*Logger, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analytics schema: %w", err)
	}
	return &Logger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Logger) Close() error {
	return l.db.Close()
}

// Track appends one event. All values travel as bind parameters; user input
// never reaches the SQL text.
func (l *Logger) Track(userID, eventType, data string) error {
	_, err := l.db.Exec(
		`INSERT INTO events (user_id, event_type, data, created_at) VALUES (?, ?, ?, ?)`,
		userID, eventType, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("track event: %w", err)
	}
	return nil
}

// UserEvents returns every event recorded for userID, oldest first.
func (l *Logger) UserEvents(userID string) ([]Event, error) {
	var events []Event
	err := l.db.Select(&events,
		`SELECT id, user_id, event_type, data, created_at FROM events WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query user events: %w", err)
	}
	return events, nil
}

// CountByType returns per-event-type totals across all users.
func (l *Logger) CountByType() (map[string]int, error) {
	rows := []struct {
		EventType string `db:"event_type"`
		Total     int    `db:"total"`
	}{}
	err := l.db.Select(&rows,
		`SELECT event_type, COUNT(*) AS total FROM events GROUP BY event_type`,
	)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.EventType] = row.Total
	}
	return counts, nil
}
