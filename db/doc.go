// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles storage engine selection and schema creation.

# Opening the store

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"sqlite" (the default) uses modernc.org/sqlite against a single file,
with WAL and a busy timeout applied via DSN pragmas. "postgres" uses
lib/pq with the URL passed through untouched.

# Schema creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL carries a small per-engine dialect (AUTOINCREMENT vs
BIGSERIAL); all runtime queries use $N placeholders, which both engines
accept.

# Tables

  - reviews: one row per published review, including the private
    client_id and delete_token columns
  - captchas: outstanding math-captcha challenges; rows are consumed on
    successful verification and lazily on expired attempts. Expired
    challenges that are never retried stay in the table - a known gap,
    kept on purpose.

# Indexes

  - reviews.ts DESC: "most recent N reviews" retrieval
  - reviews.(client_id, ts DESC): latest-name-for-client lookup
*/
package db
