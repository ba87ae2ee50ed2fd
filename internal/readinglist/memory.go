// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

// MemoryStore is an in-process Store. Lists are copied on the way in and out.
type MemoryStore struct {
	lists map[string][]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

// Get returns a copy of the list stored under key.
func (m *MemoryStore) Get(key string) ([]string, bool, error) {
	list, ok := m.lists[key]
	if !ok {
		return nil, false, nil
	}
	return append([]string{}, list...), true, nil
}

// Set stores a copy of list under key.
func (m *MemoryStore) Set(key string, list []string) error {
	m.lists[key] = append([]string{}, list...)
	return nil
}
