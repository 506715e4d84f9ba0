// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ajsite server.

ajsite is a personal research site with an anonymous public reviews
feature: a per-browser identity cookie, a math captcha gating first-time
name registration, and deletion via a bearer delete token with a
cookie-ownership fallback.

# Starting the Server

The server runs against a single-file sqlite database by default:

	go run .

Or with explicit settings:

	go run . -p 8080 -d reviews.db -t sqlite

A .env file is loaded when present.

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_URL (-d): sqlite file path or postgres URL (default: reviews.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: review and captcha persistence over database/sql
  - handlers: HTTP request handlers (reviews, captcha, identity cookie)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: token generation
  - db: driver selection and schema creation
  - cliparse: configuration parsing
  - web: server-rendered pages and static assets

See package documentation for each component.
*/
package main
