package magicstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	// Nothing stored yet.
	set, err := store.Load("rook")
	require.NoError(t, err)
	assert.Nil(t, set)

	saved := &MagicSet{
		Piece:   "rook",
		Seed:    42,
		Tries:   123456,
		FoundAt: time.Now().UTC(),
	}
	saved.Magics[0] = 0x0080001020400080
	saved.Magics[63] = 0x0001FFFAABFAD1A2
	require.NoError(t, store.Save(saved))

	got, err := store.Load("rook")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.Magics, got.Magics)
	assert.Equal(t, saved.Seed, got.Seed)
	assert.Equal(t, saved.Tries, got.Tries)
}

func TestStorePieces(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	pieces, err := store.Pieces()
	require.NoError(t, err)
	assert.Empty(t, pieces)

	require.NoError(t, store.Save(&MagicSet{Piece: "bishop"}))
	require.NoError(t, store.Save(&MagicSet{Piece: "rook"}))

	pieces, err = store.Pieces()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bishop", "rook"}, pieces)
}
