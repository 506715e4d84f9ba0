// Copyright (c) 2026 Ajmal Adamz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/ajadamz/ajsite/auth"
	"github.com/ajadamz/ajsite/models"
)

// One year. The identity must survive across visits, unlike a session
// cookie.
const identityCookieMaxAge = 365 * 24 * 60 * 60

// ResolveClientID returns the requester's client id from the identity
// cookie, generating a fresh one when the cookie is absent.
//
// The cookie value is a plain bearer credential: whoever presents it is
// treated as that browser. This is device-level ownership, not
// authentication, and nothing here verifies it cryptographically.
func ResolveClientID(r *http.Request) (string, error) {
	if id := requestClientID(r); id != "" {
		return id, nil
	}
	return auth.GenerateClientID()
}

// requestClientID reads the identity cookie without minting a new id.
// Delete uses this: an absent cookie just means no ownership fallback.
func requestClientID(r *http.Request) string {
	if c, err := r.Cookie(models.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// SetIdentityCookie (re-)sets the identity cookie on the response:
// http-only, SameSite=Lax, persistent.
func SetIdentityCookie(w http.ResponseWriter, clientID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.CookieName,
		Value:    clientID,
		Path:     "/",
		MaxAge:   identityCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
