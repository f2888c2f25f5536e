// Package storage is the service layer between the HTTP/CLI boundary and the
// document store. It applies the caller-side conventions the store refuses to
// own: required business fields, UUID generation, slug derivation, and the
// optional referential-integrity pass.
package storage

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lorekeep/lorekeep/internal/docstore"
	"github.com/lorekeep/lorekeep/internal/models"
)

// EntityService exposes CRUD over one collection with its contract applied.
type EntityService struct {
	store *docstore.Store
	spec  models.Spec
}

// NewEntityService creates a service for one collection spec.
func NewEntityService(store *docstore.Store, spec models.Spec) *EntityService {
	return &EntityService{store: store, spec: spec}
}

// Name returns the collection name.
func (s *EntityService) Name() string {
	return s.spec.Name
}

// Spec returns the collection's contract.
func (s *EntityService) Spec() models.Spec {
	return s.spec
}

// List returns all records in insertion order.
func (s *EntityService) List() ([]docstore.Record, error) {
	return s.store.List(s.spec.Name)
}

// Get returns the record with the given id.
func (s *EntityService) Get(id string) (docstore.Record, error) {
	return s.store.Get(s.spec.Name, id)
}

// GetBySlug returns the first record whose slug matches, case-insensitively.
func (s *EntityService) GetBySlug(slug string) (docstore.Record, error) {
	records, err := s.store.List(s.spec.Name)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if v, ok := rec["slug"].(string); ok && strings.EqualFold(v, slug) {
			return rec, nil
		}
	}
	return nil, docstore.ErrNotFound
}

// Create validates the record against the collection contract, fills in a
// generated id and a derived slug when absent, and inserts it.
func (s *EntityService) Create(rec docstore.Record) (docstore.Record, error) {
	if err := s.spec.ValidateRecord(rec); err != nil {
		return nil, err
	}
	rec = rec.Clone()
	if rec.ID() == "" {
		rec[docstore.IDField] = uuid.NewString()
	}
	if v, _ := rec["slug"].(string); v == "" {
		name, _ := rec["name"].(string)
		rec["slug"] = models.Slugify(name)
	}
	return s.store.Insert(s.spec.Name, rec)
}

// Update shallow-merges partial onto the stored record. The stored id always
// wins; partial bodies may omit required fields, so no contract
// re-validation happens on update.
func (s *EntityService) Update(id string, partial docstore.Record) (docstore.Record, error) {
	return s.store.Update(s.spec.Name, id, partial)
}

// Delete removes the record. References held by other records are not
// cascaded or checked; run the integrity checker to find orphans.
func (s *EntityService) Delete(id string) (bool, error) {
	return s.store.Delete(s.spec.Name, id)
}

// Services bundles one EntityService per collection.
type Services struct {
	Store        *docstore.Store
	Areas        *EntityService
	Races        *EntityService
	Characters   *EntityService
	Affiliations *EntityService
}

// NewServices wires an EntityService for every collection spec.
func NewServices(store *docstore.Store) *Services {
	svcs := &Services{Store: store}
	for _, spec := range models.Specs() {
		svc := NewEntityService(store, spec)
		switch spec.Name {
		case models.CollectionAreas:
			svcs.Areas = svc
		case models.CollectionRaces:
			svcs.Races = svc
		case models.CollectionCharacters:
			svcs.Characters = svc
		case models.CollectionAffiliations:
			svcs.Affiliations = svc
		}
	}
	return svcs
}

// All returns every entity service in display order.
func (s *Services) All() []*EntityService {
	return []*EntityService{s.Areas, s.Races, s.Characters, s.Affiliations}
}

// ByCollection returns the service for a collection name.
func (s *Services) ByCollection(name string) (*EntityService, bool) {
	for _, svc := range s.All() {
		if svc.Name() == name {
			return svc, true
		}
	}
	return nil, false
}
