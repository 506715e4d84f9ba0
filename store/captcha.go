// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ajadamz/ajsite/auth"
)

// CaptchaTTL is how long an issued challenge stays valid.
const CaptchaTTL = 300 * time.Second

// CaptchaStore owns the captchas table: short-lived one-time math
// challenges gating first-time name registration.
type CaptchaStore struct {
	db *sql.DB
}

func NewCaptchaStore(db *sql.DB) *CaptchaStore {
	return &CaptchaStore{db: db}
}

// Issue creates a challenge and returns its id plus the human-readable
// question. Operands: a in [2,9], b in [1,8].
func (s *CaptchaStore) Issue() (cid, question string, err error) {
	a, err := randBelow(8)
	if err != nil {
		return "", "", err
	}
	a += 2
	b, err := randBelow(8)
	if err != nil {
		return "", "", err
	}
	b++

	cid, err = auth.GenerateCaptchaID()
	if err != nil {
		return "", "", err
	}

	expires := time.Now().Add(CaptchaTTL).Unix()
	_, err = s.db.Exec(`
		INSERT INTO captchas (cid, answer, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cid) DO UPDATE SET answer = excluded.answer, expires_at = excluded.expires_at
	`, cid, strconv.Itoa(a+b), expires)
	if err != nil {
		return "", "", fmt.Errorf("failed to store captcha: %w", err)
	}

	return cid, fmt.Sprintf("%d + %d = ?", a, b), nil
}

// Verify checks a submitted answer against an outstanding challenge.
//
// Unknown cid: false, no mutation. Expired: the row is deleted lazily
// and verification fails. Correct answer: the row is consumed (one-time
// use) and verification succeeds. Wrong answer: the row stays, so the
// client may retry until expiry.
//
// Challenges that expire without ever being retried are never purged;
// the table grows unbounded in that case. Known gap, kept on purpose.
func (s *CaptchaStore) Verify(cid, submitted string) (bool, error) {
	if cid == "" {
		return false, nil
	}

	var answer string
	var expiresAt int64
	err := s.db.QueryRow(`
		SELECT answer, expires_at FROM captchas WHERE cid = $1
	`, cid).Scan(&answer, &expiresAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query captcha: %w", err)
	}

	if time.Now().Unix() > expiresAt {
		if _, err := s.db.Exec(`DELETE FROM captchas WHERE cid = $1`, cid); err != nil {
			return false, fmt.Errorf("failed to delete expired captcha: %w", err)
		}
		return false, nil
	}

	// The answer is not secret-sensitive, so a plain comparison is fine
	// here (delete tokens are the ones needing constant time)
	if strings.TrimSpace(submitted) != strings.TrimSpace(answer) {
		return false, nil
	}

	if _, err := s.db.Exec(`DELETE FROM captchas WHERE cid = $1`, cid); err != nil {
		return false, fmt.Errorf("failed to consume captcha: %w", err)
	}
	return true, nil
}

func randBelow(n int64) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("failed to generate captcha operand: %w", err)
	}
	return int(v.Int64()), nil
}
