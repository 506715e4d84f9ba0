// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ajadamz/ajsite/auth"
	"github.com/ajadamz/ajsite/cliparse"
	"github.com/ajadamz/ajsite/db"
)

// SetupTestDB creates a throwaway single-file sqlite database with the
// full schema. Each test gets its own file under t.TempDir(), so tests
// stay independent and need no external services.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reviews_test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  "reviews_test.db",
		DatabaseType: db.TypeSQLite,
	}
}

// CreateTestReview inserts a review with an explicit timestamp and
// returns its id and delete token. Explicit ts keeps ordering tests
// deterministic.
func CreateTestReview(t *testing.T, conn *sql.DB, name, text, clientID string, ts int64) (int64, string) {
	t.Helper()

	token, err := auth.GenerateDeleteToken()
	if err != nil {
		t.Fatalf("Failed to generate delete token: %v", err)
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO reviews (name, text, ts, client_id, delete_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, name, text, ts, clientID, token).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}

	return id, token
}

// CreateTestCaptcha inserts a challenge row with the given answer and
// expiry, bypassing Issue so tests can pin expiry times.
func CreateTestCaptcha(t *testing.T, conn *sql.DB, cid, answer string, expiresAt int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO captchas (cid, answer, expires_at)
		VALUES ($1, $2, $3)
	`, cid, answer, expiresAt)
	if err != nil {
		t.Fatalf("Failed to create test captcha: %v", err)
	}
}

// CaptchaAnswer reads the stored answer for a challenge id.
func CaptchaAnswer(t *testing.T, conn *sql.DB, cid string) string {
	t.Helper()

	var answer string
	if err := conn.QueryRow(`SELECT answer FROM captchas WHERE cid = $1`, cid).Scan(&answer); err != nil {
		t.Fatalf("Failed to read captcha answer: %v", err)
	}
	return answer
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
