// Package sqlite keeps small device-local secrets (session tokens, the app
// lock passcode hash) in an embedded SQLite database, standing in for the
// platform keystore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS credentials (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

// CredentialCache is an opaque key-value store. Values are written verbatim;
// callers hash anything sensitive before storing it.
type CredentialCache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path and ensures the schema
// exists.
func Open(path string) (*CredentialCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential cache: %w", err)
	}

	// The driver is embedded; a single connection avoids write contention.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize credential cache schema: %w", err)
	}

	return &CredentialCache{db: db}, nil
}

// Get returns the value for key, or an empty string when the key is absent.
func (c *CredentialCache) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (c *CredentialCache) Set(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to store credential %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *CredentialCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete credential %q: %w", key, err)
	}
	return nil
}

func (c *CredentialCache) Close() error {
	return c.db.Close()
}
