package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store owns the ordered records backed by a single JSON file. Every mutating
// operation rewrites the whole file through a temp-file rename, so readers
// never observe a partial write. Concurrent invocations of the tool are not
// coordinated; the last writer wins.
type Store struct {
	path    string
	records []Record
}

// Load reads the profiles file at path. A missing file yields an empty store
// without creating the file; an unreadable or duplicate-containing file is an
// ErrMalformedStore.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read profiles file %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedStore, path, err)
	}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("%w %s: profile with empty name", ErrMalformedStore, path)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("%w %s: duplicate profile %q", ErrMalformedStore, path, r.Name)
		}
		seen[r.Name] = true
	}
	s.records = records
	return s, nil
}

// List returns a copy of the records in store order.
func (s *Store) List() []Record {
	return append([]Record(nil), s.records...)
}

// Get looks a record up by exact name.
func (s *Store) Get(name string) (Record, bool) {
	for _, r := range s.records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Add appends a record and persists the store. Names are unique
// case-sensitively; a taken name fails with ErrDuplicateName before anything
// is written.
func (s *Store) Add(name, backend string) error {
	name = strings.TrimSpace(name)
	backend = strings.TrimSpace(backend)
	if name == "" {
		return fmt.Errorf("profile name required")
	}
	if backend == "" {
		return fmt.Errorf("backend URL required")
	}
	if _, ok := s.Get(name); ok {
		return fmt.Errorf("profile %q: %w", name, ErrDuplicateName)
	}
	s.records = append(s.records, Record{Name: name, Backend: backend})
	return s.persist()
}

// Edit replaces the backend of the named record, preserving its position,
// and persists the store.
func (s *Store) Edit(name, backend string) error {
	backend = strings.TrimSpace(backend)
	if backend == "" {
		return fmt.Errorf("backend URL required")
	}
	for i := range s.records {
		if s.records[i].Name == name {
			s.records[i].Backend = backend
			return s.persist()
		}
	}
	return fmt.Errorf("profile %q: %w", name, ErrNotFound)
}

// Delete removes the named record and persists the store. The order of the
// remaining records is unchanged.
func (s *Store) Delete(name string) error {
	for i := range s.records {
		if s.records[i].Name == name {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("profile %q: %w", name, ErrNotFound)
}

func (s *Store) persist() error {
	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write profiles file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profiles file %s: %w", s.path, err)
	}
	return nil
}
