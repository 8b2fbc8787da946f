package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileStackingRules(t *testing.T) {
	groundStack := StackingClass{Name: "Ground"}
	air := StackingClass{Name: "Air"}
	r := NewTileStackingRules(map[StackingClass]int{groundStack: 2})

	assert.False(t, r.HasSpace(air), "Неизвестный класс - места нет")

	require.NoError(t, r.Increment(groundStack))
	require.NoError(t, r.Increment(groundStack))
	assert.False(t, r.HasSpace(groundStack))

	err := r.Increment(groundStack)
	assert.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, StackCount{Current: 2, Max: 2}, r[groundStack], "Неудача ничего не меняет")

	clone := r.Clone()
	require.NoError(t, r.Decrement(groundStack))
	assert.Equal(t, 2, clone[groundStack].Current, "Копия независима")

	require.NoError(t, r.Decrement(groundStack))
	assert.Error(t, r.Decrement(groundStack))
	assert.Error(t, r.Decrement(air))
}
