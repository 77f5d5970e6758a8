package catalog

import (
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() ArtworkData {
	return ArtworkData{Title: "X", Image: "/img/x.webp", Price: "Rp 500.000"}
}

func TestToggleFollow(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsFollowed("A1"))

	assert.True(t, s.ToggleFollow("A1"))
	assert.True(t, s.IsFollowed("A1"))
	assert.Equal(t, []string{"A1"}, s.FollowedArtists())

	assert.False(t, s.ToggleFollow("A1"))
	assert.False(t, s.IsFollowed("A1"))
	assert.Empty(t, s.FollowedArtists())
}

func TestToggleFavouriteInvolution(t *testing.T) {
	s := NewStore()

	added, err := s.ToggleFavourite("A1", "W1", ArtworkData{Title: "X", Image: "x.png"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.IsFavourite("A1", "W1"))
	require.Len(t, s.Favourites(), 1)

	// removal is by key, data is ignored
	added, err = s.ToggleFavourite("A1", "W1", ArtworkData{})
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.IsFavourite("A1", "W1"))
	assert.Empty(t, s.Favourites())
}

func TestToggleFavouriteDefaultsStyle(t *testing.T) {
	s := NewStore()
	_, err := s.ToggleFavourite("A1", "W1", sampleData())
	require.NoError(t, err)

	favs := s.Favourites()
	require.Len(t, favs, 1)
	assert.Equal(t, StyleOther, favs[0].Style)
	assert.Equal(t, 0, favs[0].Quantity)
	assert.Equal(t, "A1-W1", favs[0].Key())
}

func TestToggleRejectsMissingFields(t *testing.T) {
	s := NewStore()

	_, err := s.ToggleFavourite("A1", "W1", ArtworkData{Image: "x.png"})
	assert.ErrorIs(t, err, ErrMissingTitle)

	_, err = s.ToggleCart("A1", "W1", ArtworkData{Title: "X", Image: "  "})
	assert.ErrorIs(t, err, ErrMissingImage)

	assert.Empty(t, s.Favourites())
	assert.Empty(t, s.Cart())
}

func TestToggleCartQuantity(t *testing.T) {
	s := NewStore()
	added, err := s.ToggleCart("A1", "W1", sampleData())
	require.NoError(t, err)
	assert.True(t, added)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	added, err = s.ToggleCart("A1", "W1", sampleData())
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.IsInCart("A1", "W1"))
}

func TestCartAndFavouritesAreIndependent(t *testing.T) {
	s := NewStore()
	_, err := s.ToggleCart("A1", "W1", sampleData())
	require.NoError(t, err)
	assert.True(t, s.IsInCart("A1", "W1"))
	assert.False(t, s.IsFavourite("A1", "W1"))

	_, err = s.ToggleFavourite("A1", "W1", sampleData())
	require.NoError(t, err)
	_, err = s.ToggleCart("A1", "W1", sampleData())
	require.NoError(t, err)
	assert.False(t, s.IsInCart("A1", "W1"))
	assert.True(t, s.IsFavourite("A1", "W1"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	_, err := s.ToggleFavourite("A1", "W1", sampleData())
	require.NoError(t, err)

	favs := s.Favourites()
	favs[0].Title = "changed"
	assert.Equal(t, "X", s.Favourites()[0].Title)
}

func TestRemovalKeepsOrder(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"W1", "W2", "W3"} {
		_, err := s.ToggleFavourite("A1", id, sampleData())
		require.NoError(t, err)
	}
	_, err := s.ToggleFavourite("A1", "W2", ArtworkData{})
	require.NoError(t, err)

	favs := s.Favourites()
	require.Len(t, favs, 2)
	assert.Equal(t, "W1", favs[0].ArtworkID)
	assert.Equal(t, "W3", favs[1].ArtworkID)
}

func TestSelectionEntryJSONIncludesKey(t *testing.T) {
	e := SelectionEntry{ArtistID: "A1", ArtworkID: "W1", Title: "X", Image: "x.png", Quantity: 1}
	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "A1-W1", decoded["key"])
	assert.Equal(t, "X", decoded["title"])
	assert.EqualValues(t, 1, decoded["quantity"])
}

func TestStoreConcurrentToggles(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleFollow("A1")
		}()
	}
	wg.Wait()
	// an even number of flips restores the initial state
	assert.False(t, s.IsFollowed("A1"))
}
