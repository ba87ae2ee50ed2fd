// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readinglist keeps the user's ordered list of accepted books and
// the stores it persists to.
package readinglist

import "fmt"

// Key is the store key the reading list lives under.
const Key = "readingList"

// Store is a key-value persistence for string lists. Get reports ok=false
// for a key that was never written. Set replaces the whole list.
type Store interface {
	Get(key string) (list []string, ok bool, err error)
	Set(key string, list []string) error
}

// List is the reading list backed by a Store. It assumes a single writer.
type List struct {
	store Store
}

// New returns a reading list persisted in store.
func New(store Store) *List {
	return &List{store: store}
}

// Entries returns the stored entries in insertion order. A list that was
// never written is empty.
func (l *List) Entries() ([]string, error) {
	entries, ok, err := l.store.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Key, err)
	}
	if !ok || entries == nil {
		return []string{}, nil
	}
	return entries, nil
}

// Add appends value unless it is already present. It reports whether the
// list changed.
func (l *List) Add(value string) (bool, error) {
	entries, err := l.Entries()
	if err != nil {
		return false, err
	}
	if Contains(value, entries) {
		return false, nil
	}

	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, entries...)
	updated = append(updated, value)
	if err := l.store.Set(Key, updated); err != nil {
		return false, fmt.Errorf("writing %s: %w", Key, err)
	}
	return true, nil
}
