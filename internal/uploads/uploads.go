// Package uploads stores product images on local disk and serves the
// best-effort cleanup contract: removing an image must never fail the
// operation that triggered it.
package uploads

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxFileSize is the upload cap for product images.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

var whitespace = regexp.MustCompile(`\s+`)

type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file under a unique timestamp-prefixed name and
// returns that name. Whitespace in the original name is collapsed to
// dashes; any path components are stripped.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	base := filepath.Base(originalName)
	base = whitespace.ReplaceAllString(base, "-")
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return name, nil
}

// Remove deletes the local file behind an image URL, if the URL points
// into /uploads/. Failures are logged and swallowed; image cleanup is a
// side effect that must never break a delete or update. Foreign URLs
// are left alone.
func (s *Store) Remove(imageURL string) {
	_, name, found := strings.Cut(imageURL, "/uploads/")
	if !found || name == "" || strings.Contains(name, "/") {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove uploaded image %s: %v", name, err)
	}
}
