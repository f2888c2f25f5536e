package storage

import (
	"errors"
	"testing"

	"github.com/lorekeep/lorekeep/internal/docstore"
	"github.com/lorekeep/lorekeep/internal/models"
)

func TestCreateGeneratesIDAndSlug(t *testing.T) {
	svcs := newTestServices(t)
	created, err := svcs.Areas.Create(docstore.Record{
		"name": "Oakdell Village", "type": "city", "description": "A quiet town",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.ID() == "" {
		t.Error("Create() did not generate an id")
	}
	if got := created["slug"]; got != "oakdell-village" {
		t.Errorf("Create() slug = %v, want oakdell-village", got)
	}

	// Caller-supplied id and slug win over generation.
	created, err = svcs.Areas.Create(docstore.Record{
		"id": "a-custom", "slug": "kept", "name": "Other", "type": "dungeon", "description": "d",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID() != "a-custom" || created["slug"] != "kept" {
		t.Errorf("Create() overrode caller-supplied identity: %v", created)
	}
}

func TestCreateValidatesContract(t *testing.T) {
	svcs := newTestServices(t)
	_, err := svcs.Areas.Create(docstore.Record{"name": "Oakdell", "type": "city"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) || verr.Field != "description" {
		t.Errorf("Create() error = %v, want ValidationError on description", err)
	}

	_, err = svcs.Races.Create(docstore.Record{"name": "Elf", "description": "d"})
	if !errors.As(err, &verr) || verr.Field != "traits" {
		t.Errorf("Create() error = %v, want ValidationError on traits", err)
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	svcs := newTestServices(t)
	rec := docstore.Record{"id": "a1", "name": "Oakdell", "type": "city", "description": "d"}
	if _, err := svcs.Areas.Create(rec); err != nil {
		t.Fatal(err)
	}
	if _, err := svcs.Areas.Create(rec); !errors.Is(err, docstore.ErrDuplicateID) {
		t.Errorf("Create() with reused id error = %v, want ErrDuplicateID", err)
	}
}

func TestGetBySlug(t *testing.T) {
	svcs := newTestServices(t)
	if _, err := svcs.Characters.Create(docstore.Record{
		"name": "Ivy Thorn", "race": "r1", "description": "d",
	}); err != nil {
		t.Fatal(err)
	}
	got, err := svcs.Characters.GetBySlug("IVY-THORN")
	if err != nil {
		t.Fatalf("GetBySlug() failed: %v", err)
	}
	if got["name"] != "Ivy Thorn" {
		t.Errorf("GetBySlug() = %v", got)
	}
	if _, err := svcs.Characters.GetBySlug("nobody"); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("GetBySlug() missing error = %v, want ErrNotFound", err)
	}
}

func TestUpdateDoesNotRevalidate(t *testing.T) {
	svcs := newTestServices(t)
	created, err := svcs.Areas.Create(docstore.Record{"name": "Oakdell", "type": "city", "description": "d"})
	if err != nil {
		t.Fatal(err)
	}
	// Partial updates may omit required fields; only the supplied keys change.
	updated, err := svcs.Areas.Update(created.ID(), docstore.Record{"history": "Founded long ago"})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated["name"] != "Oakdell" || updated["history"] != "Founded long ago" {
		t.Errorf("Update() = %v", updated)
	}
}

func TestByCollection(t *testing.T) {
	svcs := newTestServices(t)
	for _, name := range []string{"areas", "races", "characters", "affiliations"} {
		svc, ok := svcs.ByCollection(name)
		if !ok || svc.Name() != name {
			t.Errorf("ByCollection(%q) = %v, %v", name, svc, ok)
		}
	}
	if _, ok := svcs.ByCollection("spellbooks"); ok {
		t.Error("ByCollection() accepted an unknown collection")
	}
}
