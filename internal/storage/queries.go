// Read-side query helpers over the raw collections. All of them are linear
// scans of a fresh snapshot; there is no index to consult.

package storage

import (
	"github.com/lorekeep/lorekeep/internal/docstore"
)

// AreasByType returns all areas of the given type.
func (s *Services) AreasByType(areaType string) ([]docstore.Record, error) {
	records, err := s.Areas.List()
	if err != nil {
		return nil, err
	}
	var out []docstore.Record
	for _, rec := range records {
		if v, _ := rec["type"].(string); v == areaType {
			out = append(out, rec)
		}
	}
	return out, nil
}

// AreasByDangerLevel returns areas whose dangerLevel lies in [min, max].
// Areas without a danger level are excluded.
func (s *Services) AreasByDangerLevel(min, max float64) ([]docstore.Record, error) {
	records, err := s.Areas.List()
	if err != nil {
		return nil, err
	}
	var out []docstore.Record
	for _, rec := range records {
		level, ok := rec["dangerLevel"].(float64)
		if !ok {
			continue
		}
		if level >= min && level <= max {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ConnectedAreas resolves the connectedAreas ids of one area into records.
// Dangling ids resolve to nothing; the reference fields carry no guarantees.
func (s *Services) ConnectedAreas(areaID string) ([]docstore.Record, error) {
	area, err := s.Areas.Get(areaID)
	if err != nil {
		return nil, err
	}
	connected, _ := area["connectedAreas"].([]any)
	if len(connected) == 0 {
		return []docstore.Record{}, nil
	}
	wanted := make(map[string]bool, len(connected))
	for _, v := range connected {
		if id, ok := v.(string); ok {
			wanted[id] = true
		}
	}
	records, err := s.Areas.List()
	if err != nil {
		return nil, err
	}
	out := []docstore.Record{}
	for _, rec := range records {
		if wanted[rec.ID()] {
			out = append(out, rec)
		}
	}
	return out, nil
}

// CharactersByRace returns all characters whose race field holds the id.
func (s *Services) CharactersByRace(raceID string) ([]docstore.Record, error) {
	return s.charactersByField("race", raceID)
}

// CharactersByAffiliation returns all characters in the affiliation.
func (s *Services) CharactersByAffiliation(affiliationID string) ([]docstore.Record, error) {
	return s.charactersByField("affiliation", affiliationID)
}

func (s *Services) charactersByField(field, id string) ([]docstore.Record, error) {
	records, err := s.Characters.List()
	if err != nil {
		return nil, err
	}
	var out []docstore.Record
	for _, rec := range records {
		if v, _ := rec[field].(string); v == id {
			out = append(out, rec)
		}
	}
	return out, nil
}
