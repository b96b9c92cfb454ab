package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

// handleNotifications streams the session's notifications as server-sent
// events until the client goes away.
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if !s.sessions.Exists(id) {
		writeJSON(w, http.StatusNotFound, errorBody(fmt.Sprintf("session %s: %s", id, domain.ErrNotFound)))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody("streaming unsupported"))
		return
	}

	ctx := r.Context()
	ch, err := s.stream.Subscribe(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := observability.LoggerFromContext(ctx).With("session_id", id)
	log.Info("notification stream opened")
	defer log.Info("notification stream closed")

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(n)
			if err != nil {
				log.Error("failed to encode notification", "error", err)
				continue
			}
			_, _ = fmt.Fprintf(w, "event: notification\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
