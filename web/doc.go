// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web serves the server-rendered site pages and embedded static
// assets. Templates and assets are compiled into the binary via embed,
// so the deployable is a single file plus the sqlite database.
package web
