package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrStorage = errors.New("storage failure")

// Areas partition the static directory into raw uploads and processed
// results, mirroring the URL layout served under /static.
const (
	AreaUploads   = "uploads"
	AreaProcessed = "processed"
)

// LocalStore stores image payloads on the local filesystem, addressed by
// (area, name).
type LocalStore struct {
	root string
}

// NewLocalStore creates the uploads and processed areas under root.
func NewLocalStore(root string) (*LocalStore, error) {
	for _, area := range []string{AreaUploads, AreaProcessed} {
		if err := os.MkdirAll(filepath.Join(root, area), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Path(area, name string) string {
	return filepath.Join(s.root, area, name)
}

func (s *LocalStore) Save(area, name string, r io.Reader) error {
	f, err := os.Create(s.Path(area, name))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (s *LocalStore) Read(area, name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(area, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return data, nil
}

func (s *LocalStore) Exists(area, name string) bool {
	_, err := os.Stat(s.Path(area, name))
	return err == nil
}

// Remove deletes a stored payload. An already-absent file is treated as
// success.
func (s *LocalStore) Remove(area, name string) error {
	err := os.Remove(s.Path(area, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
