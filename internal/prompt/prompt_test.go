// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gbooks/pkg/types"
)

var testChoices = []types.Choice{
	{Display: "Dune by Frank Herbert (published by Ace)", Value: "Dune by Frank Herbert", ShortLabel: "Dune"},
	{Display: NoneOfThese, Value: NoneOfThese, ShortLabel: NoneOfThese},
}

func TestOptions(t *testing.T) {
	opts := Options(testChoices)

	require.Len(t, opts, 3)
	assert.Equal(t, "Dune by Frank Herbert (published by Ace)", opts[0].Key)
	assert.Equal(t, 0, opts[0].Value)
	assert.Equal(t, 1, opts[1].Value)
	assert.Equal(t, NoneOfThese, opts[2].Key)
	assert.Equal(t, declinedIndex, opts[2].Value)
}

func TestOptions_Empty(t *testing.T) {
	opts := Options(nil)
	require.Len(t, opts, 1)
	assert.Equal(t, NoneOfThese, opts[0].Key)
}

func TestResolve(t *testing.T) {
	sel, err := Resolve(0, testChoices)
	require.NoError(t, err)
	assert.False(t, sel.Declined)
	assert.Equal(t, "Dune by Frank Herbert", sel.Choice.Value)

	// A book titled like the sentinel is still a book.
	sel, err = Resolve(1, testChoices)
	require.NoError(t, err)
	assert.False(t, sel.Declined)
	assert.Equal(t, NoneOfThese, sel.Choice.Value)

	sel, err = Resolve(declinedIndex, testChoices)
	require.NoError(t, err)
	assert.True(t, sel.Declined)
	assert.Equal(t, types.Choice{}, sel.Choice)

	_, err = Resolve(2, testChoices)
	assert.ErrorContains(t, err, "out of range")
	_, err = Resolve(-7, testChoices)
	assert.Error(t, err)
}

func TestHuhSelector_NoChoices(t *testing.T) {
	sel, err := (&HuhSelector{}).Select("", nil)
	require.NoError(t, err)
	assert.True(t, sel.Declined)
}
