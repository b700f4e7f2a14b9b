package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Store is the persistence capability the codec operates against. The
// production backend is the local filesystem; tests substitute the
// in-memory backend.
type Store interface {
	// ReadDocument decodes the TOML document at path into v. A missing
	// document is reported as [ErrDocumentNotFound].
	ReadDocument(path string, v any) error

	// WriteDocument encodes v as a TOML document at path, creating any
	// missing parent directories.
	WriteDocument(path string, v any) error

	// ListDirs returns the sorted names of the subdirectories of dir.
	// A missing dir is not an error; it lists as empty.
	ListDirs(dir string) ([]string, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool
}

// =============================================================================
// Filesystem backend
// =============================================================================

type fsStore struct{}

// NewFSStore creates a Store backed by the local filesystem.
func NewFSStore() Store {
	return fsStore{}
}

func (fsStore) ReadDocument(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrDocumentNotFound)
		}
		return err
	}
	return nil
}

func (fsStore) WriteDocument(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return err
	}
	return f.Close()
}

func (fsStore) ListDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (fsStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (fsStore) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// =============================================================================
// In-memory backend
// =============================================================================

// MemStore is an in-memory Store for tests. Documents round-trip
// through TOML the same way the filesystem backend does, so schema
// mistakes surface in in-memory tests too.
type MemStore struct {
	docs  map[string][]byte
	files map[string]bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		docs:  make(map[string][]byte),
		files: make(map[string]bool),
	}
}

// Touch registers path as an existing regular file (e.g. a fake asset).
func (s *MemStore) Touch(path string) {
	s.files[filepath.Clean(path)] = true
}

// ReadDocument decodes a previously written document.
func (s *MemStore) ReadDocument(path string, v any) error {
	data, ok := s.docs[filepath.Clean(path)]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrDocumentNotFound)
	}
	return toml.Unmarshal(data, v)
}

// WriteDocument encodes v and stores it under path.
func (s *MemStore) WriteDocument(path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}
	s.docs[filepath.Clean(path)] = buf.Bytes()
	return nil
}

// ListDirs lists the immediate subdirectories implied by the stored
// document and file paths.
func (s *MemStore) ListDirs(dir string) ([]string, error) {
	prefix := filepath.Clean(dir) + string(filepath.Separator)
	seen := make(map[string]bool)
	for path := range s.docs {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			if i := strings.IndexRune(rest, filepath.Separator); i > 0 {
				seen[rest[:i]] = true
			}
		}
	}
	for path := range s.files {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			if i := strings.IndexRune(rest, filepath.Separator); i > 0 {
				seen[rest[:i]] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether path is a known document, file, or implied
// directory.
func (s *MemStore) Exists(path string) bool {
	path = filepath.Clean(path)
	if s.files[path] {
		return true
	}
	if _, ok := s.docs[path]; ok {
		return true
	}
	prefix := path + string(filepath.Separator)
	for p := range s.docs {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for p := range s.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// IsFile reports whether path is a known document or touched file.
func (s *MemStore) IsFile(path string) bool {
	path = filepath.Clean(path)
	if s.files[path] {
		return true
	}
	_, ok := s.docs[path]
	return ok
}

// Ensure both backends implement Store.
var (
	_ Store = fsStore{}
	_ Store = (*MemStore)(nil)
)
