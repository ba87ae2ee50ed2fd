// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/gbooks/pkg/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		record types.CatalogRecord
		want   types.Choice
	}{
		{
			name:   "title only",
			record: types.CatalogRecord{Title: "Dune"},
			want:   types.Choice{Display: "Dune", Value: "Dune", ShortLabel: "Dune"},
		},
		{
			name:   "title and authors",
			record: types.CatalogRecord{Title: "Good Omens", Authors: []string{"Terry Pratchett", "Neil Gaiman"}},
			want: types.Choice{
				Display:    "Good Omens by Terry Pratchett, Neil Gaiman",
				Value:      "Good Omens by Terry Pratchett, Neil Gaiman",
				ShortLabel: "Good Omens",
			},
		},
		{
			name:   "title and publisher",
			record: types.CatalogRecord{Title: "Dune", Publisher: "Ace"},
			want:   types.Choice{Display: "Dune (published by Ace)", Value: "Dune", ShortLabel: "Dune"},
		},
		{
			name:   "title, author and publisher",
			record: types.CatalogRecord{Title: "Dune", Authors: []string{"Frank Herbert"}, Publisher: "Ace"},
			want: types.Choice{
				Display:    "Dune by Frank Herbert (published by Ace)",
				Value:      "Dune by Frank Herbert",
				ShortLabel: "Dune",
			},
		},
		{
			name:   "empty authors slice is no authors",
			record: types.CatalogRecord{Title: "Dune", Authors: []string{}},
			want:   types.Choice{Display: "Dune", Value: "Dune", ShortLabel: "Dune"},
		},
		{
			name:   "missing title is empty string",
			record: types.CatalogRecord{Authors: []string{"Anonymous"}, Publisher: "Penguin"},
			want: types.Choice{
				Display:    " by Anonymous (published by Penguin)",
				Value:      " by Anonymous",
				ShortLabel: "",
			},
		},
		{
			name:   "zero record",
			record: types.CatalogRecord{},
			want:   types.Choice{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format([]types.CatalogRecord{tt.record})
			assert.Equal(t, []types.Choice{tt.want}, got)
		})
	}
}

func TestFormat_PreservesLengthAndOrder(t *testing.T) {
	records := []types.CatalogRecord{
		{Title: "Leviathan Wakes", Authors: []string{"James S. A. Corey"}},
		{Title: "Caliban's War", Authors: []string{"James S. A. Corey"}, Publisher: "Orbit"},
		{Title: "Leviathan Wakes", Authors: []string{"James S. A. Corey"}},
		{},
	}

	got := Format(records)

	assert.Len(t, got, len(records))
	for i, r := range records {
		assert.Equal(t, r.Title, got[i].ShortLabel, "choice %d out of order", i)
	}
	// Duplicates survive formatting.
	assert.Equal(t, got[0], got[2])
}

func TestFormat_Empty(t *testing.T) {
	assert.Empty(t, Format(nil))
	assert.NotNil(t, Format(nil))
	assert.Empty(t, Format([]types.CatalogRecord{}))
}

func TestFormat_DoesNotTouchInput(t *testing.T) {
	authors := []string{"Ursula K. Le Guin"}
	records := []types.CatalogRecord{{Title: "The Dispossessed", Authors: authors}}

	Format(records)

	assert.Equal(t, []string{"Ursula K. Le Guin"}, records[0].Authors)
}
