// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "config.json"))
	require.NoError(t, err)
	storeContract(t, s)
}

func TestFileStore_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark", "readingList": ["Dune"]}`), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	list, ok, err := s.Get(Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Dune"}, list)

	require.NoError(t, s.Set(Key, []string{"Dune", "Emma"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme": "dark", "readingList": ["Dune", "Emma"]}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_EmptyAndNullValues(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	s, _ := NewFileStore(empty)
	_, ok, err := s.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok)

	null := filepath.Join(dir, "null.json")
	require.NoError(t, os.WriteFile(null, []byte(`{"readingList": null}`), 0o600))
	s, _ = NewFileStore(null)
	_, ok, err = s.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	s, _ := NewFileStore(path)
	_, _, err := s.Get(Key)
	assert.ErrorContains(t, err, "parsing")

	err = s.Set(Key, []string{"x"})
	assert.Error(t, err, "a corrupt file must not be overwritten")

	data, _ := os.ReadFile(path)
	assert.Equal(t, `{not json`, string(data))
}

func TestFileStore_WrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"readingList": "Dune"}`), 0o600))

	s, _ := NewFileStore(path)
	_, _, err := s.Get(Key)
	assert.ErrorContains(t, err, "parsing readingList")
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	s, err := NewFileStore("")
	require.NoError(t, err)
	assert.Equal(t, "config.json", filepath.Base(s.Path()))
	assert.Equal(t, "gbooks", filepath.Base(filepath.Dir(s.Path())))
}
