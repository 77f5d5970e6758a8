package usecase

import (
	"context"
	"testing"
	"time"

	"artmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemap(t *testing.T) {
	cfg := testConfig()
	users := newStubUserRepo()
	users.artists = []domain.Artist{{ID: "user-1", FullName: "Ayu"}}
	artworks := &stubArtworkRepo{artworks: []domain.Artwork{
		{ID: "art-1", OwnerID: "user-1", Title: "Harbour", UpdatedAt: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
	}}
	c := newCache()
	uc := NewSitemapUsecase(artworks, users, c, cfg)

	items, err := uc.GenerateSitemap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://art.example.com", items[0].Loc)
	assert.InDelta(t, 1.0, items[0].Priority, 0.001)

	var locs []string
	for _, it := range items {
		locs = append(locs, it.Loc)
	}
	assert.Contains(t, locs, "https://art.example.com/artworks/art-1")
	assert.Contains(t, locs, "https://art.example.com/artists/user-1")

	// served from cache until an artwork write invalidates it
	_, err = uc.GenerateSitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, artworks.listCalls)
	assert.Equal(t, 1, users.listHits)

	NewArtworkUsecase(artworks, users, &stubStorage{}, stubProcessor{}, c, cfg).invalidate()
	_, err = uc.GenerateSitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, artworks.listCalls)
}
