package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelMapSaveLoadRoundTrips(t *testing.T) {
	m := NewLabelMap()
	m.Set(1, "Apple")
	m.Set(2, "Fruit salad")

	path := filepath.Join(t.TempDir(), "labels.gob")
	require.NoError(t, SaveLabelMap(path, m))

	loaded, err := LoadLabelMap(path)
	require.NoError(t, err)
	require.Equal(t, m.Len(), loaded.Len())

	title, ok := loaded.Get(1)
	require.True(t, ok)
	require.Equal(t, "Apple", title)

	_, ok = loaded.Get(99)
	require.False(t, ok)
}

func TestLabelMapGetUnknownDoc(t *testing.T) {
	m := NewLabelMap()
	_, ok := m.Get(42)
	require.False(t, ok)
}
