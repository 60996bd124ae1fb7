// Package store keeps the command history of interactive sessions in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/store/migrations"
)

// Store wraps a SQLite database connection for history storage.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new Store with the given database path.
// Runs migrations automatically.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, path: ""}
}

// DB returns the underlying database connection.
// Use sparingly - prefer using Store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file path, or "" for injected connections.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CloseDB closes a database connection and logs any errors.
// Intended for use in defer statements where errors would otherwise be ignored.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: close database: %v\n", err)
	}
}

func configureSQLite(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if path == ":memory:" {
		return nil
	}
	// Several shells may share one history file.
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record adds an entry to the history. A zero CreatedAt is set to now.
func (s *Store) Record(entry domain.HistoryEntry) error {
	if _, ok := domain.ParseOutcome(string(entry.Outcome)); !ok {
		return fmt.Errorf("record history: invalid outcome %q", entry.Outcome)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO command_history
		 (session_id, line, command, outcome, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID.String(),
		entry.Line,
		entry.Command,
		entry.Outcome.String(),
		entry.Reason,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// List returns entries matching the given filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	base := `
		SELECT
			id,
			session_id,
			line,
			command,
			outcome,
			reason,
			created_at
		FROM command_history
	`

	var (
		clauses []string
		args    []any
	)

	if !filter.SessionID.IsEmpty() {
		clauses = append(clauses, "session_id = ?")
		args = append(args, filter.SessionID.String())
	}

	if filter.Command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, filter.Command)
	}

	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, filter.Outcome.String())
	}

	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339Nano))
	}

	query := base

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Prune keeps the newest keep entries and deletes the rest.
// It returns the number of deleted entries.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune history: negative keep %d", keep)
	}

	result, err := s.db.Exec(`
		DELETE FROM command_history
		WHERE id NOT IN (
			SELECT id FROM command_history ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM command_history").Scan(&n)
	return n, err
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e         domain.HistoryEntry
		sessionID string
		outcome   string
		createdAt string
	)

	if err := rows.Scan(
		&e.ID,
		&sessionID,
		&e.Line,
		&e.Command,
		&outcome,
		&e.Reason,
		&createdAt,
	); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	e.SessionID = domain.SessionID(sessionID)
	e.Outcome = domain.Outcome(outcome)
	e.CreatedAt = t

	return e, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
