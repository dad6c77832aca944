package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openesa/esacore/internal/store"
	"github.com/openesa/esacore/internal/tokenize"
	"github.com/openesa/esacore/internal/vector"
)

func TestLoadJoinsWordMapAndConceptVectors(t *testing.T) {
	s, err := store.OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	wm := tokenize.NewWordMap()
	apple := wm.Intern("apple")
	fruit := wm.Intern("fruit")
	wm.Seal()

	ctx := context.Background()
	require.NoError(t, s.SaveWordMap(ctx, wm))
	require.NoError(t, s.SaveConceptVector(ctx, apple, vector.Encode([]vector.Pair{{DocID: 1, Weight: 0.5}})))
	// fruit has no stored vector: none of its rows passed the min_freq filter.

	idx, err := Load(ctx, s)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	v, ok := idx.Lookup("apple")
	require.True(t, ok)
	require.Equal(t, map[uint32]float32{1: 0.5}, v)

	v, ok = idx.Lookup("fruit")
	require.True(t, ok)
	require.Empty(t, v)

	_, ok = idx.Lookup("pie")
	require.False(t, ok)
}
