// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ajadamz/ajsite/auth"
	"github.com/ajadamz/ajsite/models"
)

// List limits. Absurd client-supplied values are clamped rather than
// rejected.
const (
	DefaultListLimit = 200
	MaxListLimit     = 1000
)

// ReviewStore owns the reviews table. No other component touches it.
type ReviewStore struct {
	db *sql.DB
}

func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// ClampLimit sanitizes a caller-supplied list limit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// List returns up to limit reviews, newest first. Ties on ts break by
// insertion order (higher id first) so ordering stays deterministic
// within one second.
func (s *ReviewStore) List(limit int) ([]models.ReviewSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, name, text, ts FROM reviews
		ORDER BY ts DESC, id DESC
		LIMIT $1
	`, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.ReviewSummary{}
	for rows.Next() {
		var r models.ReviewSummary
		if err := rows.Scan(&r.ID, &r.Name, &r.Text, &r.TS); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

// Insert stores a new review with a freshly generated delete token and
// the current unix timestamp. The returned Review is the only place the
// delete token ever appears.
func (s *ReviewStore) Insert(name, text, clientID string) (models.Review, error) {
	token, err := auth.GenerateDeleteToken()
	if err != nil {
		return models.Review{}, err
	}

	now := time.Now().Unix()
	var id int64
	err = s.db.QueryRow(`
		INSERT INTO reviews (name, text, ts, client_id, delete_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, name, text, now, clientID, token).Scan(&id)
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return models.Review{
		ID:          id,
		Name:        name,
		Text:        text,
		TS:          now,
		ClientID:    clientID,
		DeleteToken: token,
	}, nil
}

// DeleteByID hard-deletes a review. The supplied delete token wins if it
// matches (constant-time compare); otherwise the requester's client id
// must equal the stored one. Returns ErrNotFound or ErrUnauthorized.
func (s *ReviewStore) DeleteByID(id int64, suppliedToken, requesterClientID string) error {
	var storedToken string
	var clientID sql.NullString
	err := s.db.QueryRow(`
		SELECT delete_token, client_id FROM reviews WHERE id = $1
	`, id).Scan(&storedToken, &clientID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query review: %w", err)
	}

	authorized := suppliedToken != "" && auth.TokensEqual(suppliedToken, storedToken)
	if !authorized {
		authorized = requesterClientID != "" && clientID.Valid && requesterClientID == clientID.String
	}
	if !authorized {
		return ErrUnauthorized
	}

	if _, err := s.db.Exec(`DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// LatestNameFor returns the display name of the most recent review by a
// client, if any. That name is the client's locked name: later posts
// must reuse it.
func (s *ReviewStore) LatestNameFor(clientID string) (string, bool, error) {
	var name string
	err := s.db.QueryRow(`
		SELECT name FROM reviews
		WHERE client_id = $1
		ORDER BY ts DESC, id DESC
		LIMIT 1
	`, clientID).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query latest name: %w", err)
	}
	return name, true, nil
}
