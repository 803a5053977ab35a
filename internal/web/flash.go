package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "learner_flash"

// Flash is a one-shot status message shown on the next page load.
type Flash struct {
	Text     string
	Severity string // "success" or "error"
}

// setFlash queues a message for the next request.
func setFlash(w http.ResponseWriter, severity, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(severity + "|" + text),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads and clears the queued message, if any.
func takeFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	severity, text, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Text: text, Severity: severity}
}
