package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "gevp_flash"

// flash is a one-shot notification shown on the next rendered page.
type flash struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

func setFlash(w http.ResponseWriter, kind, message string) {
	b, err := json.Marshal(flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash, if any, and expires the cookie.
// A tampered cookie is dropped silently.
func popFlash(w http.ResponseWriter, r *http.Request) *flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Path: "/", MaxAge: -1})

	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var f flash
	if err := json.Unmarshal(b, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}
