package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lorekeep/lorekeep/internal/docstore"
)

const seedDoc = `areas:
  - name: Oakdell
    type: city
    description: A quiet town
    dangerLevel: 1
races:
  - name: Elf
    description: Old folk
    traits:
      - keen senses
`

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSeedFromFile(t *testing.T) {
	svcs := newTestServices(t)
	report, err := svcs.SeedFromFile(writeSeedFile(t, seedDoc))
	if err != nil {
		t.Fatalf("SeedFromFile() failed: %v", err)
	}
	if report.Created["areas"] != 1 || report.Created["races"] != 1 {
		t.Errorf("SeedFromFile() report = %+v", report)
	}
	if len(report.Skipped) != 0 {
		t.Errorf("SeedFromFile() skipped %v on an empty store", report.Skipped)
	}

	// Seeding goes through the normal create path.
	area, err := svcs.Areas.GetBySlug("oakdell")
	if err != nil {
		t.Fatalf("seeded area not reachable by slug: %v", err)
	}
	if area.ID() == "" {
		t.Error("seeded area has no generated id")
	}
	if area["dangerLevel"] != float64(1) {
		t.Errorf("dangerLevel = %#v, want float64(1)", area["dangerLevel"])
	}
}

func TestSeedSkipsNonEmptyCollections(t *testing.T) {
	svcs := newTestServices(t)
	if _, err := svcs.Areas.Create(docstore.Record{
		"name": "Existing", "type": "city", "description": "d",
	}); err != nil {
		t.Fatal(err)
	}

	report, err := svcs.SeedFromFile(writeSeedFile(t, seedDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != "areas" {
		t.Errorf("SeedFromFile() skipped = %v, want [areas]", report.Skipped)
	}
	areas, err := svcs.Areas.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(areas) != 1 || areas[0]["name"] != "Existing" {
		t.Errorf("seeding touched a non-empty collection: %v", areas)
	}
}

func TestSeedValidationFailureAborts(t *testing.T) {
	svcs := newTestServices(t)
	bad := "areas:\n  - name: Broken\n    type: city\n"
	_, err := svcs.SeedFromFile(writeSeedFile(t, bad))
	if err == nil || !strings.Contains(err.Error(), "seed areas[0]") {
		t.Errorf("SeedFromFile() error = %v, want seed areas[0] validation failure", err)
	}
}
