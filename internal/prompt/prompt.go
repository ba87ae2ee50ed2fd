// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt asks the user to pick one search result to add to the
// reading list.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/pdiddy/gbooks/pkg/types"
)

// NoneOfThese is the label of the option that declines every choice.
const NoneOfThese = "None of these."

// DefaultTitle is the prompt heading.
const DefaultTitle = "Add a book to your Reading List:"

// declinedIndex is the option value of NoneOfThese.
const declinedIndex = -1

// Selection is the user's answer: either a chosen Choice or a decline.
type Selection struct {
	Choice   types.Choice
	Declined bool
}

// Selected returns a Selection for c.
func Selected(c types.Choice) Selection { return Selection{Choice: c} }

// Declined returns a Selection that picks nothing.
func Declined() Selection { return Selection{Declined: true} }

// Selector presents choices and returns the user's selection.
type Selector interface {
	Select(title string, choices []types.Choice) (Selection, error)
}

// HuhSelector renders choices as a huh select field.
type HuhSelector struct {
	// Accessible switches huh to its line-based prompt, for screen readers
	// and non-interactive terminals.
	Accessible bool
}

// Select runs the form. Aborting the form (ctrl+c, esc) counts as a decline.
func (h *HuhSelector) Select(title string, choices []types.Choice) (Selection, error) {
	if len(choices) == 0 {
		return Declined(), nil
	}
	if title == "" {
		title = DefaultTitle
	}

	picked := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(Options(choices)...).
				Value(&picked),
		),
	).WithAccessible(h.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Declined(), nil
		}
		return Selection{}, fmt.Errorf("running prompt: %w", err)
	}
	return Resolve(picked, choices)
}

// Options builds one option per choice, labeled with its Display and keyed
// by index, followed by NoneOfThese. Keying by index keeps a book whose
// label happens to equal NoneOfThese selectable.
func Options(choices []types.Choice) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(choices)+1)
	for i, c := range choices {
		opts = append(opts, huh.NewOption(c.Display, i))
	}
	return append(opts, huh.NewOption(NoneOfThese, declinedIndex))
}

// Resolve maps an option value back to a Selection.
func Resolve(index int, choices []types.Choice) (Selection, error) {
	if index == declinedIndex {
		return Declined(), nil
	}
	if index < 0 || index >= len(choices) {
		return Selection{}, fmt.Errorf("selection %d out of range (%d choices)", index, len(choices))
	}
	return Selected(choices[index]), nil
}
