// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// CookieName is the identity cookie set on every posting browser.
// Possession of its value is the whole ownership story for a review.
const CookieName = "aj_client_id"

// Answer accepts both string and numeric JSON values, since browsers
// and hand-written clients send either for the captcha answer.
type Answer string

func (a *Answer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Answer(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Answer(n.String())
	return nil
}

// Request types

type CreateReviewRequest struct {
	Name string `json:"name"`
	// Text distinguishes an absent field from an explicit empty string;
	// only absence is a validation error.
	Text          *string `json:"text"`
	CaptchaID     string  `json:"captcha_id"`
	CaptchaAnswer Answer  `json:"captcha_answer"`
}

type DeleteReviewRequest struct {
	DeleteToken string `json:"delete_token"`
}

// Response types

type CaptchaResponse struct {
	CID      string `json:"cid"`
	Question string `json:"question"`
}

type CreateReviewResponse struct {
	ID          int64  `json:"id"`
	DeleteToken string `json:"delete_token"`
	Name        string `json:"name"`
	Text        string `json:"text"`
	TS          int64  `json:"ts"`
}

type ListReviewsResponse struct {
	Reviews []ReviewSummary `json:"reviews"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type Review struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Text        string `json:"text"`
	TS          int64  `json:"ts"`
	ClientID    string `json:"-"` // Never expose in JSON
	DeleteToken string `json:"-"` // Returned once at creation, never in reads
}

// ReviewSummary is the public projection of a review used by list
// responses. client_id and delete_token never appear here.
type ReviewSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

type Captcha struct {
	CID       string
	Answer    string
	ExpiresAt int64
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
