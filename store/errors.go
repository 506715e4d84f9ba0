// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

var (
	// ErrNotFound means no review matched the requested id.
	ErrNotFound = errors.New("review not found")

	// ErrUnauthorized means neither the supplied delete token nor the
	// requester's client id matched the stored credentials.
	ErrUnauthorized = errors.New("not authorized to delete review")
)
