// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/ajadamz/ajsite/cliparse"
	"github.com/ajadamz/ajsite/handlers"
	"github.com/ajadamz/ajsite/middleware"
	"github.com/ajadamz/ajsite/store"
	"github.com/ajadamz/ajsite/web"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	// Stores are built once here and injected; nothing opens storage
	// handles per request
	reviews := store.NewReviewStore(db)
	captchas := store.NewCaptchaStore(db)

	reviewHandler := handlers.NewReviewHandler(reviews, captchas)
	captchaHandler := handlers.NewCaptchaHandler(captchas)

	pages, err := web.NewPageHandler()
	if err != nil {
		return nil, err
	}

	// Reviews API
	mux.HandleFunc("GET /api/reviews/health", handlers.Health)
	mux.HandleFunc("GET /api/reviews/captcha", middleware.WithLogging(captchaHandler.Issue))
	mux.HandleFunc("GET /api/reviews", middleware.WithLogging(reviewHandler.List))
	mux.HandleFunc("POST /api/reviews", middleware.WithLogging(reviewHandler.Create))
	mux.HandleFunc("DELETE /api/reviews/{id}", middleware.WithLogging(reviewHandler.Delete))

	// Site pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pages.Index))
	mux.HandleFunc("GET /about", middleware.WithLogging(pages.About))
	mux.HandleFunc("GET /research", middleware.WithLogging(pages.Research))
	mux.HandleFunc("GET /knowledge", middleware.WithLogging(pages.Knowledge))
	mux.HandleFunc("GET /blockchain-basic", middleware.WithLogging(pages.BlockchainBasic))
	mux.HandleFunc("GET /contact", middleware.WithLogging(pages.Contact))
	mux.HandleFunc("GET /labs", middleware.WithLogging(pages.Labs))

	// Embedded assets
	mux.Handle("GET /static/", pages.Static())

	return mux, nil
}
