// Package web serves the tracking form and session list over HTTP.
package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Timzz-T/learnerhours/internal/domain/session"
	"github.com/Timzz-T/learnerhours/internal/view"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Options control presentation behavior.
type Options struct {
	DateLayout   string
	FlashTimeout time.Duration
}

// Server handles the form and list endpoints.
type Server struct {
	sessions *session.Service
	logger   *slog.Logger
	opts     Options
}

// NewRouter creates the HTTP router with middleware.
func NewRouter(sessions *session.Service, logger *slog.Logger, opts Options) *chi.Mux {
	if opts.DateLayout == "" {
		opts.DateLayout = "1/2/2006"
	}
	if opts.FlashTimeout == 0 {
		opts.FlashTimeout = 3 * time.Second
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	srv := &Server{sessions: sessions, logger: logger, opts: opts}

	r.Get("/", srv.handleIndex)
	r.Post("/sessions", srv.handleSave)
	r.Get("/sessions/{id}/edit", srv.handleEdit)
	r.Post("/sessions/{id}/delete", srv.handleDelete)
	r.Get("/health", srv.handleHealth)

	return r
}

type formData struct {
	ID        int64
	Date      string
	StartTime string
	EndTime   string
}

type pageData struct {
	Form           formData
	List           view.List
	Search         string
	Flash          *Flash
	FlashTimeoutMS int64
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, formData{})
}

// handleSave creates a session, or updates one when the form carries an id.
// Success and failure both land back on the list page; only time and overlap
// failures carry an error message, a missing date resets silently.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	date := r.PostFormValue("date")
	startTime := r.PostFormValue("start-time")
	endTime := r.PostFormValue("end-time")
	id, _ := strconv.ParseInt(r.PostFormValue("id"), 10, 64)

	var err error
	if id == 0 {
		_, err = s.sessions.Add(r.Context(), date, startTime, endTime)
	} else {
		_, err = s.sessions.Update(r.Context(), id, date, startTime, endTime)
		if err == nil {
			setFlash(w, "success", "Entry changed")
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, session.ErrMissingDate):
		// Form resets with no message.
	case errors.Is(err, session.ErrInvalidTimes):
		setFlash(w, "error", "Times invalid")
	case errors.Is(err, session.ErrOverlap):
		setFlash(w, "error", "This session overlaps with an existing one on the same date")
	case errors.Is(err, session.ErrSessionNotFound):
		setFlash(w, "error", "Session not found")
	default:
		s.logger.Error("saving session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleEdit renders the page with the form prefilled from the stored
// session. The entry stays in place until the update is submitted.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrSessionNotFound) {
		setFlash(w, "error", "Session not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.logger.Error("loading session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, r, formData{
		ID:        sess.ID,
		Date:      sess.Date,
		StartTime: sess.StartTime,
		EndTime:   sess.EndTime,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	if err := s.sessions.Remove(r.Context(), id); err != nil {
		s.logger.Error("removing session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "success", "Entry changed")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, form formData) {
	sessions, err := s.sessions.LoadAll(r.Context())
	if err != nil {
		s.logger.Error("loading sessions", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	search := r.URL.Query().Get("q")
	data := pageData{
		Form:           form,
		List:           view.BuildList(sessions, search, s.opts.DateLayout),
		Search:         search,
		Flash:          takeFlash(w, r),
		FlashTimeoutMS: s.opts.FlashTimeout.Milliseconds(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("rendering page", "error", err)
	}
}
