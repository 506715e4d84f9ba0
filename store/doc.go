// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the persistence layer for reviews and captcha
challenges over database/sql.

Both stores are thin single-row accessors; they rely on the storage
engine for write serialization and keep no in-memory state. Construct
them once at startup with the shared *sql.DB handle:

	reviews := store.NewReviewStore(conn)
	captchas := store.NewCaptchaStore(conn)

ReviewStore operations:

  - List(limit): newest-first public projection, limit clamped to
    1..1000 with a default of 200
  - Insert(name, text, clientID): assigns ts and a fresh delete token
  - DeleteByID(id, token, clientID): hard delete gated by token match
    (constant time) or client-id ownership fallback; fails with
    ErrNotFound / ErrUnauthorized
  - LatestNameFor(clientID): the client's locked display name

CaptchaStore operations:

  - Issue(): small-integer addition challenge, 300s TTL
  - Verify(cid, answer): one-time consume on success, lazy delete on
    expiry, retry allowed on wrong answers
*/
package store
