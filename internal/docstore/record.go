package docstore

import (
	"encoding/json"
	"fmt"
)

// IDField is the key every record must carry, unique within its collection.
const IDField = "id"

// Record is a single JSON document. The only structural requirement is a
// non-empty string value under [IDField]; everything else is opaque to the
// store. Cross-collection reference fields (ids pointing into other
// collections) are not dereferenced or validated here.
type Record map[string]any

// ID returns the record's id, or "" if absent or not a string.
func (r Record) ID() string {
	id, _ := r[IDField].(string)
	return id
}

// Clone returns a deep copy of the record. Mutating the copy has no effect
// on the original, matching the value-copy guarantee of [Store.List].
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = cloneValue(v)
	}
	return c
}

// Merge copies every top-level key of partial onto a clone of r. Values are
// replaced outright, not deep-merged. The id field always keeps r's original
// value: an update must never allow identity drift.
func (r Record) Merge(partial Record) Record {
	merged := r.Clone()
	for k, v := range partial {
		merged[k] = cloneValue(v)
	}
	merged[IDField] = r[IDField]
	return merged
}

// Decode unmarshals the record into v through a JSON round-trip. Used by
// callers that want a typed view of a raw record.
func (r Record) Decode(v any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// Encode converts any JSON-serializable value into a Record.
func Encode(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to build record: %w", err)
	}
	return r, nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		// JSON scalars (string, float64, bool, nil) are immutable.
		return v
	}
}
