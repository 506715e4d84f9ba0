// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/reviews", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(request_id, duration_ms).

# CORS middleware

Enable credentialed cross-origin requests:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON helpers

Write JSON responses and the {"error": msg} envelope:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name required")

Parse JSON request bodies:

	var req models.CreateReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
*/
package middleware
