package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mietpark-backend/internal/logger"
	"mietpark-backend/internal/service"
)

// errorBody is the wire shape for all error responses.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps service sentinels to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateNumber):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrHasReferences):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorBody{Detail: "internal server error"})
		return
	}
	writeJSON(w, status, errorBody{Detail: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid request body"})
		return false
	}
	return true
}
