// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the reviews HTTP API.

# Creation flow

POST /api/reviews walks a fixed sequence: validate name (non-empty after
trimming) and text (field must be present, empty string allowed),
resolve the client id from the identity cookie, check the name lock
(the most recent review's name for this client), then - for first posts
only - verify the captcha. Name conflicts are 403; everything else
invalid is 400. Success is 201 with the one-time delete_token and a
refreshed identity cookie.

# Deletion

DELETE /api/reviews/{id} accepts an optional { delete_token } body and
falls back to cookie ownership. Unknown ids are 404, credential
mismatches 403; the two are deliberately distinct.

# Identity

ResolveClientID and SetIdentityCookie implement the per-browser cookie.
It is a weak bearer credential by design: exact-match possession, no
signatures, no accounts.
*/
package handlers
