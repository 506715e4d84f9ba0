// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the reviews API and the site pages onto a
// net/http ServeMux using Go 1.22+ method patterns.
package router
