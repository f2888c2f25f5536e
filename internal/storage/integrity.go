// Caller-invoked referential integrity pass. The store never validates
// cross-collection reference fields, so deletes can silently orphan ids held
// by other records; this walk reports them after the fact.

package storage

import (
	"fmt"

	"github.com/lorekeep/lorekeep/internal/models"
)

// Violation is one dangling reference: a record field holding an id that no
// longer resolves in its target collection.
type Violation struct {
	Collection string // collection of the record holding the reference
	RecordID   string
	Field      string
	Target     string // collection the id should resolve in
	TargetID   string // the id that failed to resolve
}

// String renders the violation for logs and CLI output.
func (v Violation) String() string {
	return fmt.Sprintf("%s/%s.%s -> %s/%s (dangling)", v.Collection, v.RecordID, v.Field, v.Target, v.TargetID)
}

// CheckIntegrity scans every reference field of every collection and returns
// the dangling references found. An empty result means all references
// resolve. The pass takes independent snapshots per collection, so a
// concurrent writer can produce false positives; run it quiesced.
func (s *Services) CheckIntegrity() ([]Violation, error) {
	// Collect the id set of each collection once.
	ids := make(map[string]map[string]bool)
	for _, svc := range s.All() {
		records, err := svc.List()
		if err != nil {
			return nil, err
		}
		set := make(map[string]bool, len(records))
		for _, rec := range records {
			set[rec.ID()] = true
		}
		ids[svc.Name()] = set
	}

	var violations []Violation
	for _, svc := range s.All() {
		spec := svc.Spec()
		if len(spec.Refs) == 0 {
			continue
		}
		records, err := svc.List()
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			for _, ref := range spec.Refs {
				for _, target := range ref.RefIDs(rec) {
					if !ids[ref.Collection][target] {
						violations = append(violations, Violation{
							Collection: spec.Name,
							RecordID:   rec.ID(),
							Field:      ref.Field,
							Target:     ref.Collection,
							TargetID:   target,
						})
					}
				}
			}
		}
	}
	return violations, nil
}

// ReferencesTo returns the violations that deleting the given record would
// create, i.e. every reference field elsewhere currently pointing at it.
// Callers may run this before a delete; the store itself never does.
func (s *Services) ReferencesTo(collection, id string) ([]Violation, error) {
	var holders []Violation
	for _, svc := range s.All() {
		spec := svc.Spec()
		var refs []models.Ref
		for _, ref := range spec.Refs {
			if ref.Collection == collection {
				refs = append(refs, ref)
			}
		}
		if len(refs) == 0 {
			continue
		}
		records, err := svc.List()
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			for _, ref := range refs {
				for _, target := range ref.RefIDs(rec) {
					if target == id {
						holders = append(holders, Violation{
							Collection: spec.Name,
							RecordID:   rec.ID(),
							Field:      ref.Field,
							Target:     collection,
							TargetID:   id,
						})
					}
				}
			}
		}
	}
	return holders, nil
}
