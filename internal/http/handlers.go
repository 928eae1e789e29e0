package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "eclor/internal/log"
	"eclor/internal/services"
	"eclor/internal/sheets"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	rows, err := s.expenses.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": rows})
}

func (s *Server) handleUnclassified(w http.ResponseWriter, r *http.Request) {
	rows, err := s.expenses.Unclassified(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": rows})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.expenses.ListOptions())
}

type updateCellRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleUpdateCell(w http.ResponseWriter, r *http.Request) {
	row, err := strconv.Atoi(r.PathValue("row"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "row must be a number")
		return
	}
	field := r.PathValue("field")

	var req updateCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := s.expenses.UpdateCell(r.Context(), row, field, sanitizeInput(req.Value))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// writeServiceError maps the service and transport error taxonomy onto
// HTTP statuses: caller mistakes are 4xx, broken credentials are a
// server misconfiguration, and upstream refusals are a bad gateway.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	sl := applog.NewStructuredLogger(applog.FromContext(ctx))
	op := applog.OpRead
	if r.Method == http.MethodPut {
		op = applog.OpUpdate
	}

	var rejected *services.RejectedOptionError
	var configErr *sheets.ConfigError
	var authErr *sheets.AuthError
	var remoteErr *sheets.RemoteError

	switch {
	case errors.Is(err, services.ErrUnknownField), errors.Is(err, services.ErrRowOutOfRange):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &rejected):
		writeError(w, http.StatusUnprocessableEntity, rejected.Error())
	case errors.As(err, &configErr):
		sl.LogError(ctx, "Sheets configuration error", err, op, applog.NewFields())
		writeError(w, http.StatusInternalServerError, "backend misconfigured")
	case errors.As(err, &authErr):
		sl.LogError(ctx, "Sheets auth error", err, op, applog.LogFields{"upstream_status": authErr.Status})
		writeError(w, http.StatusBadGateway, "upstream authentication failed")
	case errors.As(err, &remoteErr):
		sl.LogError(ctx, "Sheets remote error", err, op, applog.LogFields{"upstream_status": remoteErr.Status})
		writeError(w, http.StatusBadGateway, "upstream request failed")
	case errors.Is(err, services.ErrColumnUnresolved):
		sl.LogError(ctx, "Sheet column unresolved", err, op, applog.NewFields())
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		sl.LogError(ctx, "Unhandled service error", err, op, applog.NewFields())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// sanitizeInput removes control characters and trims whitespace before a
// value is written to the sheet.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
