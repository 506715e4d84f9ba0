// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestGenerateClientID(t *testing.T) {
	id, err := GenerateClientID()
	if err != nil {
		t.Fatalf("GenerateClientID failed: %v", err)
	}
	if len(id) != 32 {
		t.Errorf("expected 32 hex chars, got %d (%q)", len(id), id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("client ID is not valid hex: %v", err)
	}

	// Collisions across a handful of generations would indicate a
	// broken entropy source
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateClientID()
		if err != nil {
			t.Fatalf("GenerateClientID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate client ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateCaptchaID(t *testing.T) {
	cid, err := GenerateCaptchaID()
	if err != nil {
		t.Fatalf("GenerateCaptchaID failed: %v", err)
	}
	if len(cid) != 24 {
		t.Errorf("expected 24 hex chars, got %d (%q)", len(cid), cid)
	}
	if _, err := hex.DecodeString(cid); err != nil {
		t.Errorf("captcha ID is not valid hex: %v", err)
	}
}

func TestGenerateDeleteToken(t *testing.T) {
	token, err := GenerateDeleteToken()
	if err != nil {
		t.Fatalf("GenerateDeleteToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if strings.ContainsAny(token, "=+/") {
		t.Errorf("token must be URL-safe without padding, got %q", token)
	}
	// 24 bytes of base64 without padding is 32 characters
	if len(token) != 32 {
		t.Errorf("expected 32 chars, got %d (%q)", len(token), token)
	}

	other, err := GenerateDeleteToken()
	if err != nil {
		t.Fatalf("GenerateDeleteToken failed: %v", err)
	}
	if token == other {
		t.Error("two generated tokens are identical")
	}
}

func TestTokensEqual(t *testing.T) {
	tests := []struct {
		name     string
		supplied string
		stored   string
		want     bool
	}{
		{"matching tokens", "abc123", "abc123", true},
		{"different tokens", "abc123", "abc124", false},
		{"different lengths", "abc", "abc123", false},
		{"both empty", "", "", true},
		{"supplied empty", "", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokensEqual(tt.supplied, tt.stored); got != tt.want {
				t.Errorf("TokensEqual(%q, %q) = %v, want %v", tt.supplied, tt.stored, got, tt.want)
			}
		})
	}
}
