package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS banner_messages (
	display_order INTEGER PRIMARY KEY,
	message TEXT NOT NULL,
	enabled INTEGER NOT NULL DEFAULT 1
)`

// SQLiteGateway implements ports.Gateway on a local SQLite database.
type SQLiteGateway struct {
	db *sql.DB
}

// OpenSQLiteGateway opens (creating if needed) the database at path.
// Use ":memory:" for an ephemeral store.
func OpenSQLiteGateway(path string) (*SQLiteGateway, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite db: %w", err)
	}

	return &SQLiteGateway{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteGateway) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetAllBannerMessages returns every stored message sorted by order.
func (s *SQLiteGateway) GetAllBannerMessages(ctx context.Context) ([]domain.BannerMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT display_order, message, enabled FROM banner_messages ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrGatewayUnavailable, err)
	}
	defer rows.Close()

	messages := []domain.BannerMessage{}
	for rows.Next() {
		var m domain.BannerMessage
		if err := rows.Scan(&m.Order, &m.Message, &m.Enabled); err != nil {
			return nil, fmt.Errorf("scan banner message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banner messages: %w", err)
	}

	return messages, nil
}

// AddBannerMessage inserts a new message; the order must not exist yet.
func (s *SQLiteGateway) AddBannerMessage(ctx context.Context, message string, order int64, enabled bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO banner_messages (display_order, message, enabled) VALUES (?, ?, ?)`,
		order, message, enabled,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %d", ports.ErrOrderTaken, order)
	}
	if err != nil {
		return fmt.Errorf("insert banner message: %w", err)
	}
	return nil
}

// UpdateBannerMessage replaces the text and flag of the message at order.
func (s *SQLiteGateway) UpdateBannerMessage(ctx context.Context, order int64, message string, enabled bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE banner_messages SET message = ?, enabled = ? WHERE display_order = ?`,
		message, enabled, order,
	)
	if err != nil {
		return fmt.Errorf("update banner message: %w", err)
	}
	return requireAffected(res, order)
}

// DeleteBannerMessage removes the message at order.
func (s *SQLiteGateway) DeleteBannerMessage(ctx context.Context, order int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM banner_messages WHERE display_order = ?`, order)
	if err != nil {
		return fmt.Errorf("delete banner message: %w", err)
	}
	return requireAffected(res, order)
}

func requireAffected(res sql.Result, order int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ports.ErrNotFound, order)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ ports.Gateway = (*SQLiteGateway)(nil)
