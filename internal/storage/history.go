package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"floattimer/internal/core/timer"
	_ "github.com/mattn/go-sqlite3"
)

const historyFileName = "history.db"

// Session is one finished timer run: an expired countdown or a stopwatch
// run that was stopped with time on the clock.
type Session struct {
	ID         int64
	Mode       timer.Mode
	Configured time.Duration
	Duration   time.Duration
	Expired    bool
	EndedAt    time.Time
}

// History records finished sessions in a SQLite file next to the settings.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the session history database.
func OpenHistory(appName string) (*History, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	return OpenHistoryAt(filepath.Join(dir, historyFileName))
}

// OpenHistoryAt opens the history database at an explicit path.
func OpenHistoryAt(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	history := &History{db: db}
	if err := history.initTable(); err != nil {
		db.Close()
		return nil, err
	}
	return history, nil
}

func (history *History) initTable() error {
	_, err := history.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            mode TEXT NOT NULL,
            configured_seconds INTEGER NOT NULL,
            duration_seconds INTEGER NOT NULL,
            expired INTEGER NOT NULL,
            ended_at DATETIME NOT NULL
        )`)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Record inserts one finished session.
func (history *History) Record(session Session) error {
	_, err := history.db.Exec(
		`INSERT INTO sessions (mode, configured_seconds, duration_seconds, expired, ended_at)
         VALUES (?, ?, ?, ?, ?)`,
		string(session.Mode),
		int64(session.Configured/time.Second),
		int64(session.Duration/time.Second),
		session.Expired,
		session.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Recent returns the most recently finished sessions, newest first.
func (history *History) Recent(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := history.db.Query(
		`SELECT id, mode, configured_seconds, duration_seconds, expired, ended_at
         FROM sessions ORDER BY ended_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var session Session
		var mode string
		var configuredSeconds, durationSeconds int64
		if err := rows.Scan(&session.ID, &mode, &configuredSeconds, &durationSeconds, &session.Expired, &session.EndedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.Mode = timer.Mode(mode)
		session.Configured = time.Duration(configuredSeconds) * time.Second
		session.Duration = time.Duration(durationSeconds) * time.Second
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// Close releases the underlying database handle.
func (history *History) Close() error {
	return history.db.Close()
}
