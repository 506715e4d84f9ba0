// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ajadamz/ajsite/middleware"
	"github.com/ajadamz/ajsite/models"
	"github.com/ajadamz/ajsite/store"
)

type ReviewHandler struct {
	reviews  *store.ReviewStore
	captchas *store.CaptchaStore
}

func NewReviewHandler(reviews *store.ReviewStore, captchas *store.CaptchaStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, captchas: captchas}
}

// List handles GET /api/reviews?limit=N
// Returns: { reviews: [ {id,name,text,ts} ... ] }, newest first.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	reviews, err := h.reviews.List(limit)
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListReviewsResponse{Reviews: reviews})
}

// Create handles POST /api/reviews
// Accepts JSON: { name, text, captcha_id, captcha_answer }.
// The first post from a browser registers its display name and requires
// a solved captcha; later posts must reuse that name and skip the
// captcha. Returns the created review plus its delete_token.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name required")
		return
	}
	// An explicit empty string is a valid text; only a missing field is
	// rejected
	if req.Text == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text required")
		return
	}
	text := strings.TrimSpace(*req.Text)

	clientID, err := ResolveClientID(r)
	if err != nil {
		slog.Error("failed to resolve client identity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to resolve client identity")
		return
	}

	lockedName, hasName, err := h.reviews.LatestNameFor(clientID)
	if err != nil {
		slog.Error("failed to look up locked name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	if hasName && lockedName != name {
		middleware.ErrorResponse(w, http.StatusForbidden,
			"this device already has a name set; use the same name or reset locally")
		return
	}

	if !hasName {
		ok, err := h.captchas.Verify(req.CaptchaID, string(req.CaptchaAnswer))
		if err != nil {
			slog.Error("failed to verify captcha", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
			return
		}
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "captcha failed")
			return
		}
	}

	review, err := h.reviews.Insert(name, text, clientID)
	if err != nil {
		slog.Error("failed to insert review", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to save review")
		return
	}

	// Re-set the cookie on every post so the identity keeps outliving
	// its previous expiry
	SetIdentityCookie(w, clientID)

	slog.Info("review created", "id", review.ID, "name", review.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateReviewResponse{
		ID:          review.ID,
		DeleteToken: review.DeleteToken,
		Name:        review.Name,
		Text:        review.Text,
		TS:          review.TS,
	})
}

// Delete handles DELETE /api/reviews/{id}
// Body { delete_token } is optional; without a matching token the
// identity cookie must match the review's client id.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	// Body is optional: cookie-based ownership needs no token
	var req models.DeleteReviewRequest
	_ = middleware.ParseJSONBody(r, &req)

	err = h.reviews.DeleteByID(id, req.DeleteToken, requestClientID(r))
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, "unauthorized")
	case err != nil:
		slog.Error("failed to delete review", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
	default:
		slog.Info("review deleted", "id", id)
		middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
	}
}

// Health handles GET /api/reviews/health
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
