// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ajadamz/ajsite/middleware"
	"github.com/ajadamz/ajsite/models"
	"github.com/ajadamz/ajsite/store"
)

type CaptchaHandler struct {
	captchas *store.CaptchaStore
}

func NewCaptchaHandler(captchas *store.CaptchaStore) *CaptchaHandler {
	return &CaptchaHandler{captchas: captchas}
}

// Issue handles GET /api/reviews/captcha
// Returns a fresh math challenge: { cid, question }.
func (h *CaptchaHandler) Issue(w http.ResponseWriter, r *http.Request) {
	cid, question, err := h.captchas.Issue()
	if err != nil {
		slog.Error("failed to issue captcha", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to issue captcha")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CaptchaResponse{
		CID:      cid,
		Question: question,
	})
}
