// Area-specific handlers: list filters and the connections lookup.

package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/lorekeep/lorekeep/internal/docstore"
	apierrors "github.com/lorekeep/lorekeep/internal/errors"
	"github.com/lorekeep/lorekeep/internal/models"
	"github.com/lorekeep/lorekeep/internal/storage"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// AreaHandler extends the generic CRUD surface with the area query filters.
type AreaHandler struct {
	*EntityHandler
	Svcs *storage.Services
}

// NewAreaHandler creates the areas handler.
func NewAreaHandler(svcs *storage.Services, maxBodyBytes int64) *AreaHandler {
	return &AreaHandler{
		EntityHandler: NewEntityHandler(svcs.Areas, maxBodyBytes),
		Svcs:          svcs,
	}
}

// List returns areas, optionally filtered by ?type= and the
// ?danger_min=/?danger_max= range. Filters combine by intersection.
func (h *AreaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("type") && !q.Has("danger_min") && !q.Has("danger_max") {
		h.EntityHandler.List(w, r)
		return
	}

	areaType := q.Get("type")
	if areaType != "" && !models.ValidAreaType(models.AreaType(areaType)) {
		utils.RespondError(w, apierrors.InvalidField("type"))
		return
	}

	minLevel, maxLevel := math.Inf(-1), math.Inf(1)
	var err error
	if v := q.Get("danger_min"); v != "" {
		if minLevel, err = strconv.ParseFloat(v, 64); err != nil {
			utils.RespondError(w, apierrors.InvalidField("danger_min"))
			return
		}
	}
	if v := q.Get("danger_max"); v != "" {
		if maxLevel, err = strconv.ParseFloat(v, 64); err != nil {
			utils.RespondError(w, apierrors.InvalidField("danger_max"))
			return
		}
	}

	var records []docstore.Record
	if q.Has("danger_min") || q.Has("danger_max") {
		records, err = h.Svcs.AreasByDangerLevel(minLevel, maxLevel)
	} else {
		records, err = h.Svcs.AreasByType(areaType)
		areaType = "" // already applied
	}
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	if areaType != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if rec["type"] == areaType {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	respondRecords(w, records)
}

// Connections resolves an area's connectedAreas ids into full records.
func (h *AreaHandler) Connections(w http.ResponseWriter, r *http.Request) {
	records, err := h.Svcs.ConnectedAreas(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, translateError(err, h.Svc.Name()))
		return
	}
	respondRecords(w, records)
}
