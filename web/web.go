// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageHandler serves the server-rendered marketing pages and the
// embedded static assets. The pages are plain content; the reviews
// widget on the index page is driven entirely by /static/reviews.js
// against the JSON API.
type PageHandler struct {
	tmpl *template.Template
}

func NewPageHandler() (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &PageHandler{tmpl: tmpl}, nil
}

type pageData struct {
	Title string
	Page  string
}

func (h *PageHandler) render(w http.ResponseWriter, name, title string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, pageData{Title: title, Page: name}); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", "AJMAL ADAMZ Blockchain Research & Technologies")
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", "About | Ajmal Adamz")
}

func (h *PageHandler) Research(w http.ResponseWriter, r *http.Request) {
	h.render(w, "research.html", "Research | Ajmal Adamz")
}

func (h *PageHandler) Knowledge(w http.ResponseWriter, r *http.Request) {
	h.render(w, "knowledge.html", "History of Blockchain | Ajmal Adamz")
}

func (h *PageHandler) BlockchainBasic(w http.ResponseWriter, r *http.Request) {
	h.render(w, "blockchain_basic.html", "Blockchain Basic | Ajmal Adamz")
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html", "Contact | Ajmal Adamz")
}

func (h *PageHandler) Labs(w http.ResponseWriter, r *http.Request) {
	h.render(w, "labs.html", "🧪 Labs | Ajmal Adamz Research")
}

// Static serves the embedded /static/ assets.
func (h *PageHandler) Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
