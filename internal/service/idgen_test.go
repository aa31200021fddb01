package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newEntityID()
		assert.Len(t, id, 10)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestRandomDigits(t *testing.T) {
	s := randomDigits(12)
	require.Len(t, s, 12)
	for _, r := range s {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateUniqueRetriesTakenCandidates(t *testing.T) {
	candidates := []string{"taken", "taken", "free"}
	i := 0
	gen := func() string {
		c := candidates[i]
		i++
		return c
	}
	exists := func(_ context.Context, s string) (bool, error) {
		return s == "taken", nil
	}

	got, err := generateUnique(context.Background(), gen, exists)
	require.NoError(t, err)
	assert.Equal(t, "free", got)
	assert.Equal(t, 3, i)
}
