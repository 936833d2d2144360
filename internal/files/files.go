// Package files persists uploaded document bytes in a flat blob
// directory. Blobs are keyed by a generated filename; the user-supplied
// name is never used as a storage key.
package files

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes, resolves and removes blobs under a single directory.
type Store struct {
	dir string
}

// NewStore creates the blob directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save streams the uploaded file to disk under a fresh generated name and
// returns that name. The original extension is kept for download clients.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Path resolves a stored filename to its on-disk location, reporting
// whether the blob is actually present.
func (s *Store) Path(filename string) (string, bool) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

// Remove deletes a blob. Removing a blob that is already gone is not an
// error.
func (s *Store) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
