// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens the storage handle for the configured engine. The handle
// is created once at startup and injected into the stores; nothing in
// the request path opens connections lazily.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case TypeSQLite:
		conn, err := sql.Open("sqlite", sqliteDSN(databaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return conn, nil
	case TypePostgres:
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q (use %s or %s)", databaseType, TypeSQLite, TypePostgres)
	}
}

// sqliteDSN turns a bare file path into a DSN with WAL and a busy
// timeout, so concurrent single-row writes serialize inside the engine
// instead of failing with SQLITE_BUSY. Pre-built DSNs pass through.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}
