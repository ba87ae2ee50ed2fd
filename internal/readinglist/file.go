// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDir      = "gbooks"
	configFile  = "config.json"
	sqliteFile  = "gbooks.db"
	filePerm    = 0o600
	dirPerm     = 0o755
	tempPattern = ".config-*.json"
)

// FileStore keeps lists in a single JSON object file, one top-level key per
// list. Keys it does not own are preserved on write.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore at path, or at DefaultFilePath when path
// is empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// DefaultFilePath returns <user config dir>/gbooks/config.json.
func DefaultFilePath() (string, error) {
	return defaultPath(configFile)
}

// DefaultSQLitePath returns <user config dir>/gbooks/gbooks.db.
func DefaultSQLitePath() (string, error) {
	return defaultPath(sqliteFile)
}

func defaultPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, appDir, name), nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

// Get returns the list under key. A missing file or key is not an error.
func (s *FileStore) Get(key string) ([]string, bool, error) {
	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}
	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		return nil, false, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, fmt.Errorf("parsing %s in %s: %w", key, s.path, err)
	}
	return list, true, nil
}

// Set replaces the list under key and rewrites the file atomically.
func (s *FileStore) Set(key string, list []string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	doc[key] = raw

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", s.path, err)
	}
	return writeAtomic(s.path, data)
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return doc, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions on %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
