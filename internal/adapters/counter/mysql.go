package counter

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL-backed CounterStore for multi-instance deployments.
// Atomicity is delegated to the server via the LAST_INSERT_ID upsert idiom,
// so concurrent increments on one key never lose updates.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore connects to MySQL and ensures the counters table exists
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS usage_counters (
			name VARCHAR(255) PRIMARY KEY,
			value BIGINT NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create counters table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves the current counter value, zero for unknown keys
func (s *MySQLStore) Get(ctx context.Context, key string) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM usage_counters WHERE name = ?
	`, key).Scan(&value)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query counter: %w", err)
	}
	return value, nil
}

// IncrementBy atomically adds n to the counter and returns the new value.
// LAST_INSERT_ID(expr) makes the post-increment value readable on the same
// connection without a second racing SELECT.
func (s *MySQLStore) IncrementBy(ctx context.Context, key string, n int64) (int64, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, `
		INSERT INTO usage_counters (name, value) VALUES (?, LAST_INSERT_ID(?))
		ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + ?)
	`, key, n, n)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	var value int64
	if err := conn.QueryRowContext(ctx, `SELECT LAST_INSERT_ID()`).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to read incremented value: %w", err)
	}
	return value, nil
}

// Stop closes the database connection
func (s *MySQLStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL counter store", zap.Error(err))
	}
}
