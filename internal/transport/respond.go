package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rpggio/projman/internal/domain/apperr"
)

// ErrorResponse is the body of every 4xx/5xx JSON reply.
type ErrorResponse struct {
	Status string        `json:"status"`
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// statusLabel renders a code the way the error envelope names it, for example
// "422 UNPROCESSABLE_ENTITY".
func statusLabel(code int) string {
	text := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
	return fmt.Sprintf("%d %s", code, text)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(message))
}

func writeErrorEnvelope(w http.ResponseWriter, code int, message string) {
	label := statusLabel(code)
	writeJSON(w, code, ErrorResponse{
		Status: label,
		Errors: []ErrorDetail{{ID: label, Message: message}},
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeErrorEnvelope(w, http.StatusBadRequest, message)
}

// writeError maps a service error onto a response. Domain errors keep their
// message; anything else is logged and hidden behind a generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	s.metrics.observeDomainError(kind)

	switch kind {
	case apperr.KindParentNotFound, apperr.KindDuplicateDescription:
		writeErrorEnvelope(w, http.StatusUnprocessableEntity, apperr.MessageOf(err))
	case apperr.KindInvalidStatusCode:
		s.logger.Error("stored status code is invalid", "path", r.URL.Path, "error", err)
		writeErrorEnvelope(w, http.StatusInternalServerError, apperr.MessageOf(err))
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorEnvelope(w, http.StatusInternalServerError, "internal server error")
	}
}
