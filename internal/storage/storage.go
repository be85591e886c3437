package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// SQLite stores DATETIME values as text in this layout.
const timeLayout = "2006-01-02 15:04:05"

// Open creates a SQLite connection via libSQL and configures it for
// concurrent use: WAL journal mode, 5 s busy timeout, foreign keys enabled.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == ":memory:" {
		// A second pool connection would see its own empty database.
		db.SetMaxOpenConns(1)
	}

	// libSQL rejects Exec for PRAGMAs that return rows. Use QueryContext and
	// drain rows to handle both kinds uniformly.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		rows, err := db.QueryContext(ctx, p)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %s: %w", p, err)
		}
		rows.Close()
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

type Storage struct {
	db *sql.DB
}

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// InsertHighlight appends one highlight record and returns its id. When
// n.CreatedAt is nil the created_at column falls back to CURRENT_TIMESTAMP.
func (s *Storage) InsertHighlight(ctx context.Context, n NewHighlight) (int64, error) {
	var (
		id  int64
		err error
	)
	if n.CreatedAt != nil {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO highlights (player, type, value, comment, created_at)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id
		`, n.Player, string(n.Type), n.Value, n.Comment, n.CreatedAt.Format(timeLayout)).Scan(&id)
	} else {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO highlights (player, type, value, comment)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`, n.Player, string(n.Type), n.Value, n.Comment).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("inserting highlight: %w", err)
	}
	return id, nil
}

// DistinctPlayers returns every player name that appears in storage,
// ordered alphabetically.
func (s *Storage) DistinctPlayers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT player
		FROM highlights
		ORDER BY player ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListHighlights returns all highlight records, newest first.
func (s *Storage) ListHighlights(ctx context.Context) ([]Highlight, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player, type, value, comment, created_at
		FROM highlights
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var highlights []Highlight
	for rows.Next() {
		var (
			h         Highlight
			value     sql.NullInt64
			comment   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&h.ID, &h.Player, (*string)(&h.Type), &value, &comment, &createdAt); err != nil {
			return nil, err
		}
		if value.Valid {
			v := int(value.Int64)
			h.Value = &v
		}
		if comment.Valid {
			c := comment.String
			h.Comment = &c
		}
		h.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		highlights = append(highlights, h)
	}
	return highlights, rows.Err()
}

// Ping verifies the database connection is alive.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
