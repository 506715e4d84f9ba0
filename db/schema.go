// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the reviews subsystem.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := sqliteSchema
	if databaseType == TypePostgres {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Reviews
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    text TEXT NOT NULL,
    ts INTEGER NOT NULL,
    client_id TEXT,
    delete_token TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_ts ON reviews(ts DESC);
CREATE INDEX IF NOT EXISTS idx_reviews_client_id ON reviews(client_id, ts DESC);

-- Captcha challenges
CREATE TABLE IF NOT EXISTS captchas (
    cid TEXT PRIMARY KEY,
    answer TEXT NOT NULL,
    expires_at INTEGER NOT NULL
);
`

const postgresSchema = `
-- Reviews
CREATE TABLE IF NOT EXISTS reviews (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    text TEXT NOT NULL,
    ts BIGINT NOT NULL,
    client_id TEXT,
    delete_token TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_ts ON reviews(ts DESC);
CREATE INDEX IF NOT EXISTS idx_reviews_client_id ON reviews(client_id, ts DESC);

-- Captcha challenges
CREATE TABLE IF NOT EXISTS captchas (
    cid TEXT PRIMARY KEY,
    answer TEXT NOT NULL,
    expires_at BIGINT NOT NULL
);
`
