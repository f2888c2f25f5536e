// Package models defines the wiki's record schemas and the caller-side
// conventions the store itself never enforces: required business fields,
// slug derivation and cross-collection reference fields.
package models

import (
	"fmt"
)

// Collection names, each mapping to one file under the store root.
const (
	CollectionAreas        = "areas"
	CollectionRaces        = "races"
	CollectionCharacters   = "characters"
	CollectionAffiliations = "affiliations"
)

// Collections returns every collection name in display order.
func Collections() []string {
	return []string{CollectionAreas, CollectionRaces, CollectionCharacters, CollectionAffiliations}
}

// AreaType classifies an area.
type AreaType string

const (
	AreaTypeCity      AreaType = "city"
	AreaTypeDungeon   AreaType = "dungeon"
	AreaTypeHuntZone  AreaType = "hunt-zone"
	AreaTypePeaceZone AreaType = "peace-zone"
)

// Karma is the moral alignment of a character or affiliation.
type Karma string

const (
	KarmaGood    Karma = "good"
	KarmaNeutral Karma = "neutral"
	KarmaBad     Karma = "bad"
)

// Area is a location in the universe: a city, dungeon, hunting ground or
// safe zone. ConnectedAreas and Inhabitants hold ids into other collections;
// nothing dereferences or cascades on them.
type Area struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Type             AreaType `json:"type"`
	Description      string   `json:"description"`
	History          string   `json:"history,omitempty"`
	Inhabitants      []string `json:"inhabitants,omitempty"`
	DangerLevel      int      `json:"dangerLevel,omitempty"`
	ConnectedAreas   []string `json:"connectedAreas,omitempty"`
	PreviewImage     string   `json:"previewImage,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
}

// Race is a people of the universe. Regions holds area ids.
type Race struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	History     string   `json:"history,omitempty"`
	Regions     []string `json:"regions,omitempty"`
}

// Character is a person. Race and Affiliation hold single ids into their
// respective collections.
type Character struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	Surname          string `json:"surname,omitempty"`
	Race             string `json:"race"`
	Affiliation      string `json:"affiliation,omitempty"`
	Age              int    `json:"age,omitempty"`
	Description      string `json:"description"`
	History          string `json:"history,omitempty"`
	Karma            Karma  `json:"karma,omitempty"`
	PreviewImage     string `json:"previewImage,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
}

// Affiliation is a faction or organization. Races and Leaders hold ids.
type Affiliation struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	History     string   `json:"history,omitempty"`
	Karma       Karma    `json:"karma"`
	Races       []string `json:"races,omitempty"`
	Leaders     []string `json:"leaders,omitempty"`
}

// ValidAreaType reports whether t is a known area type.
func ValidAreaType(t AreaType) bool {
	switch t {
	case AreaTypeCity, AreaTypeDungeon, AreaTypeHuntZone, AreaTypePeaceZone:
		return true
	}
	return false
}

// ValidKarma reports whether k is a known karma value.
func ValidKarma(k Karma) bool {
	switch k {
	case KarmaGood, KarmaNeutral, KarmaBad:
		return true
	}
	return false
}

// ValidationError reports a record field that failed boundary validation.
type ValidationError struct {
	Field  string
	Reason string // "missing" or "invalid"
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s is %s", e.Field, e.Reason)
}
