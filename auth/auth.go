// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateClientID creates the opaque per-browser identity token:
// 16 random bytes, 32 hex characters.
func GenerateClientID() (string, error) {
	return generateHex(16)
}

// GenerateCaptchaID creates a captcha challenge id. 12 bytes is plenty
// for a token that only needs to be unguessable for five minutes.
func GenerateCaptchaID() (string, error) {
	return generateHex(12)
}

func generateHex(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateDeleteToken creates the per-review delete credential:
// 24 random bytes (192 bits), URL-safe base64 without padding.
func GenerateDeleteToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate delete token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// TokensEqual compares a supplied delete token against the stored one
// in constant time.
func TokensEqual(supplied, stored string) bool {
	return hmac.Equal([]byte(supplied), []byte(stored))
}
