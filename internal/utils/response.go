// Package utils holds small helpers shared by the HTTP handlers.
package utils

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/lorekeep/lorekeep/internal/errors"
)

// ErrorResponse is the small JSON payload every failed request gets.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already on the wire, log only.
		slog.Error("Failed to encode response", "err", err)
	}
}

// RespondError maps err onto an HTTP status and error body. Errors that do
// not implement [apierrors.ErrorWithStatus] become opaque 500s so internal
// detail never leaks to the client.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apierrors.ErrInternal
	message := "internal error"

	var ews apierrors.ErrorWithStatus
	if errors.As(err, &ews) {
		status = ews.StatusCode()
		code = ews.Code()
		message = ews.Error()
	} else {
		slog.Error("Unhandled error reached the HTTP boundary", "err", err)
	}
	RespondJSON(w, status, ErrorResponse{Error: message, Code: string(code)})
}
