package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lorekeep/lorekeep/internal/docstore"
	apierrors "github.com/lorekeep/lorekeep/internal/errors"
	"github.com/lorekeep/lorekeep/internal/models"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		maxBytes int64
		wantErr  bool
	}{
		{"valid object", `{"name": "Oakdell"}`, 1024, false},
		{"invalid JSON", `{"name":`, 1024, true},
		{"trailing garbage", `{"name": "a"} {"x": 1}`, 1024, true},
		{"over size limit", `{"name": "` + strings.Repeat("x", 100) + `"}`, 16, true},
		{"array instead of object", `[1, 2]`, 1024, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/areas", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			rec, err := decodeRecord(w, r, tt.maxBytes)
			if tt.wantErr {
				if err == nil {
					t.Errorf("decodeRecord(%q) succeeded, want error", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRecord(%q) failed: %v", tt.body, err)
			}
			if rec["name"] != "Oakdell" {
				t.Errorf("decodeRecord() = %v", rec)
			}
		})
	}
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"not found", docstore.ErrNotFound, http.StatusNotFound, apierrors.ErrNotFound},
		{"duplicate id", docstore.ErrDuplicateID, http.StatusConflict, apierrors.ErrDuplicateID},
		{"invalid record", docstore.ErrInvalidRecord, http.StatusBadRequest, apierrors.ErrValidationFailed},
		{"missing field", &models.ValidationError{Field: "name", Reason: "missing"}, http.StatusBadRequest, apierrors.ErrMissingField},
		{"invalid field", &models.ValidationError{Field: "karma", Reason: "invalid"}, http.StatusBadRequest, apierrors.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "areas")
			var ews apierrors.ErrorWithStatus
			if !errors.As(got, &ews) {
				t.Fatalf("translateError(%v) = %v, not an API error", tt.err, got)
			}
			if ews.StatusCode() != tt.wantStatus || ews.Code() != tt.wantCode {
				t.Errorf("translateError(%v) = %d/%s, want %d/%s",
					tt.err, ews.StatusCode(), ews.Code(), tt.wantStatus, tt.wantCode)
			}
		})
	}

	// Unknown errors pass through untouched.
	plain := errors.New("disk on fire")
	if got := translateError(plain, "areas"); got != plain {
		t.Errorf("translateError() rewrote an unknown error: %v", got)
	}
}
