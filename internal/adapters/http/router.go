// Package httpadapter exposes the guidance service as a JSON API.
package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PabloGalante/life-guide/internal/app/guidance"
	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
)

// Sessions is the live session registry.
type Sessions interface {
	Create(ctx context.Context) (session.Snapshot, error)
	Get(id domain.SessionID) (session.Snapshot, error)
	With(id domain.SessionID, fn func(*session.State) error) error
	Delete(id domain.SessionID) error
	Exists(id domain.SessionID) bool
}

// NotificationStream delivers a session's notifications as they happen.
type NotificationStream interface {
	Subscribe(ctx context.Context, id domain.SessionID) (<-chan domain.Notification, error)
}

type Server struct {
	svc      *guidance.Service
	sessions Sessions
	stream   NotificationStream
}

// NewServer builds the router. stream may be nil, in which case the
// notifications endpoint is not mounted.
func NewServer(svc *guidance.Service, sessions Sessions, stream NotificationStream) http.Handler {
	s := &Server{svc: svc, sessions: sessions, stream: stream}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(withRequestContext)
	r.Use(withLogging)
	r.Use(middleware.Recoverer)
	r.Use(withCORS)

	r.Get("/healthz", s.handleHealth)
	r.Get("/faiths", s.handleListFaiths)

	r.Post("/sessions", s.handleCreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleDeleteSession)
		r.Patch("/preferences", s.handleUpdatePreferences)
		r.Post("/guidance", s.handleSeekGuidance)
		r.Get("/journal", s.handleJournal)
		r.Post("/background", s.handleBackground)
		r.Get("/reminder", s.handlePollReminder)
		r.Put("/reminders", s.handleSetReminders)
		r.Post("/clear", s.handleClearForm)
		if stream != nil {
			r.Get("/notifications", s.handleNotifications)
		}
	})

	return r
}

func sessionID(r *http.Request) domain.SessionID {
	return domain.SessionID(chi.URLParam(r, "id"))
}
