package httpadapter

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/PabloGalante/life-guide/internal/app/guidance"
	"github.com/PabloGalante/life-guide/internal/app/journal"
	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: time.Now().UTC()})
}

func (s *Server) handleListFaiths(w http.ResponseWriter, r *http.Request) {
	paths := make([]pathView, 0, len(domain.Paths))
	for _, p := range domain.Paths {
		paths = append(paths, pathView{Value: p, Label: p.Label()})
	}
	writeJSON(w, http.StatusOK, catalogResponse{Faiths: domain.Faiths(), Paths: paths})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Session: snap})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Get(sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: snap})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(sessionID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	var prefs session.Preferences
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		prefs = s.svc.UpdatePreferences(r.Context(), st, req.update())
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesResponse{Preferences: prefs})
}

func (s *Server) handleSeekGuidance(w http.ResponseWriter, r *http.Request) {
	var req guidanceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	var entry domain.JournalEntry
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		var err error
		entry, err = s.svc.SeekGuidance(r.Context(), st, guidance.SeekInput{
			Faith:         req.Faith,
			Path:          domain.ParsePath(req.Path),
			Concern:       req.Concern,
			RememberFaith: req.RememberFaith,
		})
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guidanceResponse{Entry: entry, Summary: journal.DefaultSummary(entry)})
}

// handleJournal lists entries newest first unless order=chronological.
// limit caps the number of entries; 0 or absent means all.
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "recent"
	}
	if order != "recent" && order != "chronological" {
		badRequest(w, "order must be recent or chronological")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	resp := journalResponse{Order: order, Entries: []journalEntryResponse{}}
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		resp.Total = st.Journal.Count()

		var entries []domain.JournalEntry
		if order == "recent" {
			entries = st.Journal.Recent(limit)
		} else {
			entries = slices.Collect(st.Journal.Chronological())
			if limit > 0 && limit < len(entries) {
				entries = entries[:limit]
			}
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, journalEntryResponse{JournalEntry: e, Summary: journal.DefaultSummary(e)})
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	var req backgroundRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err.Error())
		return
	}

	var res guidance.BackgroundResult
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		var err error
		switch {
		case req.Mode == modeDefault:
			res = s.svc.ResetBackground(st)
		case req.Mode == modeCustom:
			res, err = s.svc.ApplyCustomBackground(r.Context(), st, req.Path)
		case req.Key != "":
			res, err = s.svc.SelectFaithTheme(r.Context(), st, req.Key)
		default:
			res, err = s.svc.ApplyFaithTheme(r.Context(), st, req.Faith)
		}
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBackgroundResponse(res))
}

func (s *Server) handlePollReminder(w http.ResponseWriter, r *http.Request) {
	var resp reminderResponse
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		if rem, ok := s.svc.PollReminder(r.Context(), st); ok {
			resp = reminderResponse{Fire: true, Hour: rem.Hour, Message: rem.Message}
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetReminders(w http.ResponseWriter, r *http.Request) {
	var req remindersRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err.Error())
		return
	}

	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		s.svc.SetRemindersEnabled(st, *req.Enabled)
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, remindersResponse{Enabled: *req.Enabled})
}

func (s *Server) handleClearForm(w http.ResponseWriter, r *http.Request) {
	err := s.sessions.With(sessionID(r), func(st *session.State) error {
		s.svc.ClearForm(r.Context(), st)
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
