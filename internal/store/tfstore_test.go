package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertDocumentAndDistinctDocsCount(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.InsertDocument(ctx, 1, map[uint32]float32{10: 1.0, 11: 1.5}))
	require.NoError(t, s.InsertDocument(ctx, 2, map[uint32]float32{10: 2.0}))
	require.NoError(t, s.InsertDocument(ctx, 3, map[uint32]float32{11: 1.0}))

	n, err := s.DistinctDocsCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestDocFrequencyPerTerm(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.InsertDocument(ctx, 1, map[uint32]float32{10: 1.0, 11: 1.5}))
	require.NoError(t, s.InsertDocument(ctx, 2, map[uint32]float32{10: 2.0}))
	require.NoError(t, s.InsertDocument(ctx, 3, map[uint32]float32{11: 1.0}))

	df := map[uint32]uint64{}
	require.NoError(t, s.DocFrequencyPerTerm(ctx, func(termID uint32, count uint64) error {
		df[termID] = count
		return nil
	}))
	require.Equal(t, map[uint32]uint64{10: 2, 11: 2}, df)
}

func TestScanByTermOrdersByWeightDescending(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.InsertDocument(ctx, 1, map[uint32]float32{7: 1.0}))
	require.NoError(t, s.InsertDocument(ctx, 2, map[uint32]float32{7: 3.0}))
	require.NoError(t, s.InsertDocument(ctx, 3, map[uint32]float32{7: 2.0}))

	var weights []float32
	var docIDs []uint32
	require.NoError(t, s.ScanByTerm(ctx, 0, func(termID, docID uint32, weight float32) error {
		require.Equal(t, uint32(7), termID)
		weights = append(weights, weight)
		docIDs = append(docIDs, docID)
		return nil
	}))

	require.Equal(t, []float32{3.0, 2.0, 1.0}, weights)
	require.Equal(t, []uint32{2, 3, 1}, docIDs)
}

func TestScanByTermFiltersMinFreq(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.InsertDocument(ctx, 1, map[uint32]float32{7: 0.1}))
	require.NoError(t, s.InsertDocument(ctx, 2, map[uint32]float32{7: 5.0}))

	var seen []uint32
	require.NoError(t, s.ScanByTerm(ctx, 1.0, func(_, docID uint32, _ float32) error {
		seen = append(seen, docID)
		return nil
	}))
	require.Equal(t, []uint32{2}, seen)
}

func TestScanByTermGroupsMultipleTermsInTermIDOrder(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.InsertDocument(ctx, 1, map[uint32]float32{20: 1.0, 5: 1.0}))

	var order []uint32
	require.NoError(t, s.ScanByTerm(ctx, 0, func(termID, _ uint32, _ float32) error {
		order = append(order, termID)
		return nil
	}))
	require.Equal(t, []uint32{5, 20}, order)
}
