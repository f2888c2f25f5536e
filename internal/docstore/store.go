package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

var (
	// ErrNotFound is returned when a point operation addresses a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when an insert is attempted without an id.
	ErrInvalidRecord = errors.New("record has no id")
	// ErrDuplicateID is returned when an insert would reuse an existing id.
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrInvalidCollection is returned for collection names that cannot map
	// to a file under the store root.
	ErrInvalidCollection = errors.New("invalid collection name")
	// ErrStoreLocked is returned by Open when another process holds the store.
	ErrStoreLocked = errors.New("store is locked by another process")
)

// Store owns the on-disk representation of named record collections.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	root string
	lock *flock.Flock

	mu          sync.Mutex
	collections map[string]*sync.RWMutex
}

// Open creates the store root if absent and acquires an exclusive file lock
// on it, so that at most one process operates on the store at a time.
// The caller must Close the store to release the lock.
func Open(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root %s: %w", root, err)
	}
	lock := flock.New(filepath.Join(root, ".lorekeep.lock"))
	held, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire store lock: %w", err)
	}
	if !held {
		return nil, ErrStoreLocked
	}
	return &Store{
		root:        root,
		lock:        lock,
		collections: make(map[string]*sync.RWMutex),
	}, nil
}

// Close releases the store's file lock.
func (s *Store) Close() error {
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release store lock: %w", err)
	}
	return nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// List returns a deep copy of all records in the collection, in insertion
// order. A missing file reads as an empty collection. A file that fails to
// parse also reads as empty; the condition is logged, not surfaced.
func (s *Store) List(name string) ([]Record, error) {
	mu, err := s.collection(name)
	if err != nil {
		return nil, err
	}
	mu.RLock()
	defer mu.RUnlock()
	return s.read(name)
}

// Replace overwrites the entire collection with records. The full payload is
// serialized in memory before the file is touched, so an encoding failure
// never leaves partial content behind.
func (s *Store) Replace(name string, records []Record) error {
	mu, err := s.collection(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	return s.write(name, records)
}

// Insert appends a record to the end of the collection. The record must
// carry a non-empty id; reusing an existing id fails with [ErrDuplicateID].
// Returns the inserted record unchanged.
func (s *Store) Insert(name string, rec Record) (Record, error) {
	id := rec.ID()
	if id == "" {
		return nil, ErrInvalidRecord
	}
	mu, err := s.collection(name)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()

	records, err := s.read(name)
	if err != nil {
		return nil, err
	}
	for _, existing := range records {
		if existing.ID() == id {
			return nil, fmt.Errorf("%w: %q in collection %s", ErrDuplicateID, id, name)
		}
	}
	records = append(records, rec.Clone())
	if err := s.write(name, records); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a copy of the first record whose id matches, case-sensitively.
func (s *Store) Get(name, id string) (Record, error) {
	mu, err := s.collection(name)
	if err != nil {
		return nil, err
	}
	mu.RLock()
	defer mu.RUnlock()

	records, err := s.read(name)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Update shallow-merges partial onto the first record with a matching id and
// persists the collection. New top-level keys are added, existing keys are
// replaced outright, and the id field is forced back to the original value.
// Returns the merged record, or [ErrNotFound] with storage untouched.
func (s *Store) Update(name, id string, partial Record) (Record, error) {
	mu, err := s.collection(name)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()

	records, err := s.read(name)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if rec.ID() != id {
			continue
		}
		merged := rec.Merge(partial)
		records[i] = merged
		if err := s.write(name, records); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, ErrNotFound
}

// Delete removes the first record with a matching id and persists the
// remaining sequence. Returns false without writing when no record matches.
func (s *Store) Delete(name, id string) (bool, error) {
	mu, err := s.collection(name)
	if err != nil {
		return false, err
	}
	mu.Lock()
	defer mu.Unlock()

	records, err := s.read(name)
	if err != nil {
		return false, err
	}
	for i, rec := range records {
		if rec.ID() != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		if err := s.write(name, records); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// collection returns the mutex guarding name, creating it on first use.
func (s *Store) collection(name string) (*sync.RWMutex, error) {
	if !validCollectionName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.collections[name]
	if !ok {
		mu = &sync.RWMutex{}
		s.collections[name] = mu
	}
	return mu, nil
}

// read loads the collection file. Caller must hold the collection lock.
func (s *Store) read(name string) ([]Record, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Lenient by contract: a corrupt file reads as empty so callers keep
		// working, but the condition must be visible in the logs.
		slog.Warn("Corrupt collection file, treating as empty", "collection", name, "path", path, "err", err)
		return []Record{}, nil
	}
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out, nil
}

// write persists the full collection. Caller must hold the collection lock.
func (s *Store) write(name string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", name, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.root, name+".json")
}

// validCollectionName accepts lowercase alphanumerics, hyphen and underscore.
// Anything else could escape the store root once joined into a path.
func validCollectionName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' && c != '_' {
			return false
		}
	}
	return true
}
