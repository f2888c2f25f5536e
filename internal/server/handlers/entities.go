// Generic CRUD handlers shared by every collection.

package handlers

import (
	"net/http"

	"github.com/lorekeep/lorekeep/internal/docstore"
	"github.com/lorekeep/lorekeep/internal/storage"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// EntityHandler serves the CRUD surface of one collection.
type EntityHandler struct {
	Svc          *storage.EntityService
	MaxBodyBytes int64
}

// NewEntityHandler creates a handler for one collection service.
func NewEntityHandler(svc *storage.EntityService, maxBodyBytes int64) *EntityHandler {
	return &EntityHandler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

// List returns every record in the collection.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Svc.List()
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	respondRecords(w, records)
}

// Get returns one record by id.
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.Get(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

// GetBySlug returns one record by its slug, case-insensitively.
func (h *EntityHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.GetBySlug(r.PathValue("slug"))
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

// Create validates and inserts a new record, returning it with its generated
// id and slug.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(w, r, h.MaxBodyBytes)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	created, err := h.Svc.Create(rec)
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

// Update shallow-merges the request body onto the stored record.
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	partial, err := decodeRecord(w, r, h.MaxBodyBytes)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	updated, err := h.Svc.Update(r.PathValue("id"), partial)
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

// Delete removes a record by id.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Svc.Delete(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	if !removed {
		utils.RespondError(w, translateError(docstore.ErrNotFound, h.Svc.Name()))
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
