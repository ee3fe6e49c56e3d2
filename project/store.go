package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileMode is the permission saved project files get.
const FileMode os.FileMode = 0o644

// Store keeps project files in a single directory.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path resolves name inside the store directory. Absolute names are kept.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) || s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Save writes p under name, choosing the codec from the extension.
func (s *Store) Save(name string, p *Project) error {
	return SaveFile(s.Path(name), p)
}

// Load reads the project stored under name.
func (s *Store) Load(name string) (*Project, error) {
	return LoadFile(s.Path(name))
}

// Delete removes the project stored under name.
func (s *Store) Delete(name string) error {
	return DeleteFile(s.Path(name))
}

// List returns the names of every project file in the store, sorted. An
// empty Dir lists the working directory.
func (s *Store) List() ([]string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFor(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// SaveFile writes p to path. The file is replaced atomically: the record
// is written to a temporary file in the same directory and renamed over
// path, so a failed save leaves any previous file intact. The saved file
// has mode FileMode.
func SaveFile(path string, p *Project) error {
	if p.Len() == 0 {
		return ErrNothingToSave
	}
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p, format); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadFile reads a project from path. Nothing is returned unless the whole
// file decodes and validates.
func LoadFile(path string) (*Project, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// DeleteFile removes a project file. Only files with a project extension
// are removed.
func DeleteFile(path string) error {
	if _, err := FormatFor(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", filepath.Base(path), err)
	}
	return nil
}
