package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PabloGalante/life-guide/internal/app/guidance"
	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.Logger().Error("json encode failed", "error", err)
	}
}

type errResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available,omitempty"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody(msg))
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeError maps service errors to a status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var noMatch *domain.NoMatchError

	switch {
	case errors.As(err, &noMatch):
		writeJSON(w, http.StatusNotFound, errResponse{Error: err.Error(), Available: noMatch.Available})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, guidance.ErrIncompleteRequest):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrFetch):
		writeJSON(w, http.StatusBadGateway, errorBody(err.Error()))
	default:
		observability.LoggerFromContext(r.Context()).Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error"))
	}
}
