package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/repository"
	"booking-admin-console/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "kind", kind, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrAdminIdentityMissing):
		return http.StatusUnauthorized, "admin_identity_missing"
	case errors.Is(err, service.ErrAlreadyProcessed):
		return http.StatusConflict, "already_processed"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrInvalidDateRange), errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrRequestRequired):
		return http.StatusBadRequest, "invalid_input"
	case service.IsPersistenceFailure(err):
		return http.StatusInternalServerError, "persistence_failure"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(service.ErrInvalidInput, err)
	}
	return nil
}
