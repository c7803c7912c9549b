// Package docstore implements the whole-document persistence primitive the
// user and task stores are built on. Each Store owns one JSON file and
// serializes every load-mutate-save cycle behind a mutex, so concurrent
// mutations never lose writes or hand out duplicate ids.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store binds one document type to one file on disk. The zero value is not
// usable; construct with New.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Read decodes the current document into the zero value of D. An absent file
// is the documented empty state; a file that exists but cannot be parsed is
// an error, never silently treated as fresh data.
func Read[D any](s *Store) (D, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[D](s)
}

// Update runs one load-mutate-save cycle under the store lock. The document
// is saved only when fn returns nil; fn's error is returned unwrapped so
// callers can branch on sentinel errors.
func Update[D any](s *Store, fn func(*D) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load[D](s)
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return save(s, &doc)
}

func load[D any](s *Store) (D, error) {
	var doc D
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc, nil
}

// save writes the document to a temp file in the same directory and renames
// it over the target, so a reader never observes a partial write.
func save[D any](s *Store, doc *D) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}
