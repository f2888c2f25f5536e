// Declares the per-collection conventions: required fields, enum fields and
// cross-collection reference fields.

package models

import (
	"github.com/lorekeep/lorekeep/internal/docstore"
)

// Ref describes a record field holding id(s) presumed to resolve in another
// collection. The store never validates these; the integrity checker in
// internal/storage walks them on demand.
type Ref struct {
	Field      string
	Collection string
	Multi      bool // id array instead of a single id
}

// Spec describes the caller-enforced contract of one collection.
type Spec struct {
	Name string

	// Required fields must be present as non-empty strings on create.
	Required []string

	// RequiredLists must be present as non-empty arrays on create.
	RequiredLists []string

	// Enums restricts the listed fields to a fixed value set when present.
	Enums map[string][]string

	Refs []Ref
}

// Specs returns the contract of every collection, in display order.
func Specs() []Spec {
	return []Spec{
		{
			Name:     CollectionAreas,
			Required: []string{"name", "type", "description"},
			Enums: map[string][]string{
				"type": {string(AreaTypeCity), string(AreaTypeDungeon), string(AreaTypeHuntZone), string(AreaTypePeaceZone)},
			},
			Refs: []Ref{
				{Field: "connectedAreas", Collection: CollectionAreas, Multi: true},
				{Field: "inhabitants", Collection: CollectionCharacters, Multi: true},
			},
		},
		{
			Name:          CollectionRaces,
			Required:      []string{"name", "description"},
			RequiredLists: []string{"traits"},
			Refs: []Ref{
				{Field: "regions", Collection: CollectionAreas, Multi: true},
			},
		},
		{
			Name:     CollectionCharacters,
			Required: []string{"name", "race", "description"},
			Enums: map[string][]string{
				"karma": {string(KarmaGood), string(KarmaNeutral), string(KarmaBad)},
			},
			Refs: []Ref{
				{Field: "race", Collection: CollectionRaces},
				{Field: "affiliation", Collection: CollectionAffiliations},
			},
		},
		{
			Name:     CollectionAffiliations,
			Required: []string{"name", "description", "karma"},
			Enums: map[string][]string{
				"karma": {string(KarmaGood), string(KarmaNeutral), string(KarmaBad)},
			},
			Refs: []Ref{
				{Field: "races", Collection: CollectionRaces, Multi: true},
				{Field: "leaders", Collection: CollectionCharacters, Multi: true},
			},
		},
	}
}

// SpecFor returns the spec for a collection name.
func SpecFor(name string) (Spec, bool) {
	for _, s := range Specs() {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// ValidateRecord checks the create-time contract: required fields present
// and non-empty, required lists non-empty, enum fields within range.
func (s Spec) ValidateRecord(r docstore.Record) error {
	for _, field := range s.Required {
		v, _ := r[field].(string)
		if v == "" {
			return &ValidationError{Field: field, Reason: "missing"}
		}
	}
	for _, field := range s.RequiredLists {
		list, ok := r[field].([]any)
		if !ok || len(list) == 0 {
			return &ValidationError{Field: field, Reason: "missing"}
		}
	}
	for field, allowed := range s.Enums {
		v, ok := r[field].(string)
		if !ok || v == "" {
			continue // Presence is governed by Required, not Enums.
		}
		valid := false
		for _, a := range allowed {
			if v == a {
				valid = true
				break
			}
		}
		if !valid {
			return &ValidationError{Field: field, Reason: "invalid"}
		}
	}
	return nil
}

// RefIDs extracts the ids held by ref on the record. Non-string entries and
// empty values are skipped, matching the store's opaque treatment of them.
func (ref Ref) RefIDs(r docstore.Record) []string {
	if ref.Multi {
		list, ok := r[ref.Field].([]any)
		if !ok {
			return nil
		}
		var ids []string
		for _, v := range list {
			if id, ok := v.(string); ok && id != "" {
				ids = append(ids, id)
			}
		}
		return ids
	}
	id, ok := r[ref.Field].(string)
	if !ok || id == "" {
		return nil
	}
	return []string{id}
}
