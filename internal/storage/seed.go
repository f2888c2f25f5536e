// Seeds the store from a YAML file. Only empty collections are seeded so a
// re-run never clobbers edited content.

package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lorekeep/lorekeep/internal/docstore"
)

// SeedReport summarizes what a seeding run did.
type SeedReport struct {
	Created map[string]int // records created per collection
	Skipped []string       // collections left alone because they had data
}

// SeedFromFile loads a YAML document keyed by collection name and creates
// every listed record through the normal create path, so ids, slugs and
// required-field validation apply exactly as they do over HTTP.
func (s *Services) SeedFromFile(path string) (*SeedReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	report := &SeedReport{Created: make(map[string]int)}
	for _, svc := range s.All() {
		entries, ok := doc[svc.Name()]
		if !ok {
			continue
		}
		existing, err := svc.List()
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			report.Skipped = append(report.Skipped, svc.Name())
			continue
		}
		for i, entry := range entries {
			rec := docstore.Record(normalizeValue(entry).(map[string]any))
			if _, err := svc.Create(rec); err != nil {
				return nil, fmt.Errorf("seed %s[%d]: %w", svc.Name(), i, err)
			}
			report.Created[svc.Name()]++
		}
	}
	return report, nil
}

// normalizeValue rewrites YAML-decoded values into their JSON shapes so
// seeded records round-trip identically to API-created ones.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = normalizeValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = normalizeValue(e)
		}
		return s
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}
