// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/gbooks/pkg/types"
)

// Format turns catalog records into choices, one per record and in the same
// order. Nothing is filtered or deduplicated here; duplicate detection
// happens against the reading list when a choice is accepted.
//
//	"Dune" by [Frank Herbert], Ace        → Display "Dune by Frank Herbert (published by Ace)"
//	                                         Value   "Dune by Frank Herbert"
//	                                         Short   "Dune"
func Format(records []types.CatalogRecord) []types.Choice {
	choices := make([]types.Choice, 0, len(records))
	for _, r := range records {
		choices = append(choices, formatRecord(r))
	}
	return choices
}

func formatRecord(r types.CatalogRecord) types.Choice {
	value := r.Title
	if len(r.Authors) > 0 {
		value += " by " + strings.Join(r.Authors, ", ")
	}

	display := value
	if r.Publisher != "" {
		display += " (published by " + r.Publisher + ")"
	}

	return types.Choice{
		Display:    display,
		Value:      value,
		ShortLabel: r.Title,
	}
}
