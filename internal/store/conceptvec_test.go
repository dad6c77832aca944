package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadConceptVectorRoundTrips(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	blob := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, s.SaveConceptVector(ctx, 7, blob))

	got, ok, err := s.LoadConceptVector(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, blob, got)
}

func TestLoadConceptVectorMissingIsNotFound(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.LoadConceptVector(context.Background(), 99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIterateConceptVectorsVisitsAllInTermIDOrder(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveConceptVector(ctx, 20, []byte{1}))
	require.NoError(t, s.SaveConceptVector(ctx, 5, []byte{2}))
	require.NoError(t, s.SaveConceptVector(ctx, 10, []byte{3}))

	var order []uint32
	require.NoError(t, s.IterateConceptVectors(ctx, func(termID uint32, _ []byte) error {
		order = append(order, termID)
		return nil
	}))
	require.Equal(t, []uint32{5, 10, 20}, order)
}
