// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation for the reviews subsystem.

# Client IDs

Client IDs identify a browser, not a person:

	id, err := auth.GenerateClientID()  // 32 hex characters

The value lives in an http-only cookie; whoever presents it owns the
reviews it created. There is no cryptographic binding beyond exact
match, which is the intended (weak) trust model.

# Delete tokens

Delete tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateDeleteToken()

URL-safe base64 without padding. A token is returned once in the
creation response and compared in constant time on delete:

	if auth.TokensEqual(supplied, stored) { ... }

# Captcha IDs

Short-lived challenge ids for the math captcha:

	cid, err := auth.GenerateCaptchaID()  // 24 hex characters
*/
package auth
