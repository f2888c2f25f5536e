// Package images persists uploaded image files under a public-servable
// directory and hands back relative paths that records carry as opaque
// strings (previewImage, additionalImages).
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotImage is returned when the declared media type is not image/*.
var ErrNotImage = errors.New("uploaded file is not an image")

// Store writes uploaded files into a single flat directory.
type Store struct {
	root string
}

// NewStore creates the upload directory if absent.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.root
}

// Save persists an uploaded file and returns its browser-relative path
// ("/uploads/<random>-<sanitized name>"). The declared content type must
// begin with "image/"; pixel content is never inspected. Data goes through
// a temp file and a rename so a failed upload leaves nothing behind.
func (s *Store) Save(fileName, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	base := sanitizeFileName(fileName)
	if base == "" {
		// Nothing survived sanitization (e.g. an all-non-ASCII name).
		base = "file"
	}
	// Random prefix avoids collisions between identically-named uploads.
	name := uuid.NewString() + "-" + base

	tmp, err := os.CreateTemp(s.root, "*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.root, name)); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// Delete removes a previously saved image given its relative path.
// Returns true if a file was removed.
func (s *Store) Delete(imagePath string) bool {
	name := filepath.Base(strings.TrimSuffix(imagePath, "/"))
	if name == "" || name == "." || name == ".." {
		return false
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil {
		return false
	}
	return true
}

// sanitizeFileName strips every character outside [A-Za-z0-9.-].
func sanitizeFileName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
