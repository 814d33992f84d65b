package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaque_Generate(t *testing.T) {
	g := NewOpaque()

	tok, err := g.Generate()
	require.NoError(t, err)

	id, err := uuid.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestOpaque_GenerateUnique(t *testing.T) {
	g := NewOpaque()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}
