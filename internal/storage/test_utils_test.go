package storage

import (
	"testing"

	"github.com/lorekeep/lorekeep/internal/docstore"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	store, err := docstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("docstore.Open() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("store.Close() failed: %v", err)
		}
	})
	return NewServices(store)
}
