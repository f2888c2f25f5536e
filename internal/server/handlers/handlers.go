// Package handlers implements the HTTP handlers for the wiki API.
//
// Records travel as raw JSON objects end to end, so every handler is a plain
// http.HandlerFunc decoding into [docstore.Record] rather than a typed
// request struct.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lorekeep/lorekeep/internal/docstore"
	apierrors "github.com/lorekeep/lorekeep/internal/errors"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// decodeRecord reads one JSON object from the request body. The body is
// capped at maxBytes before decoding.
func decodeRecord(w http.ResponseWriter, r *http.Request, maxBytes int64) (docstore.Record, error) {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	var rec docstore.Record
	dec := json.NewDecoder(body)
	if err := dec.Decode(&rec); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apierrors.BadRequest("request body too large")
		}
		return nil, apierrors.BadRequest("invalid JSON body").Wrap(err)
	}
	// Reject trailing garbage after the object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, apierrors.BadRequest("invalid JSON body")
	}
	return rec, nil
}

// translateError maps storage-layer errors onto API errors. Anything
// unrecognized passes through and surfaces as an opaque 500.
func translateError(err error, resource string) error {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return apierrors.NotFound(resource).Wrap(err)
	case errors.Is(err, docstore.ErrDuplicateID):
		return apierrors.Duplicate("id").Wrap(err)
	case errors.Is(err, docstore.ErrInvalidRecord), errors.Is(err, docstore.ErrInvalidCollection):
		return apierrors.BadRequest(err.Error())
	case errors.As(err, &verr):
		if verr.Reason == "missing" {
			return apierrors.MissingField(verr.Field)
		}
		return apierrors.InvalidField(verr.Field)
	default:
		return err
	}
}

// respondRecords writes a list response, normalizing nil to an empty array.
func respondRecords(w http.ResponseWriter, records []docstore.Record) {
	if records == nil {
		records = []docstore.Record{}
	}
	utils.RespondJSON(w, http.StatusOK, records)
}
