// Character-specific handlers: list filters by race and affiliation.

package handlers

import (
	"net/http"

	"github.com/lorekeep/lorekeep/internal/storage"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// CharacterHandler extends the generic CRUD surface with character filters.
type CharacterHandler struct {
	*EntityHandler
	Svcs *storage.Services
}

// NewCharacterHandler creates the characters handler.
func NewCharacterHandler(svcs *storage.Services, maxBodyBytes int64) *CharacterHandler {
	return &CharacterHandler{
		EntityHandler: NewEntityHandler(svcs.Characters, maxBodyBytes),
		Svcs:          svcs,
	}
}

// List returns characters, optionally filtered by ?race= or ?affiliation=.
// The filters are exclusive; race wins when both are given.
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Has("race"):
		records, err := h.Svcs.CharactersByRace(q.Get("race"))
		if err != nil {
			utils.RespondError(w, translateError(err, h.Svc.Name()))
			return
		}
		respondRecords(w, records)
	case q.Has("affiliation"):
		records, err := h.Svcs.CharactersByAffiliation(q.Get("affiliation"))
		if err != nil {
			utils.RespondError(w, translateError(err, h.Svc.Name()))
			return
		}
		respondRecords(w, records)
	default:
		h.EntityHandler.List(w, r)
	}
}
