package usecase

import (
	"context"
	"fmt"
	"time"

	"artmarket-backend/config"
	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/cache"
)

type SitemapItem struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   float32
}

type SitemapUsecase struct {
	artworkRepo domain.ArtworkRepository
	userRepo    domain.UserRepository
	baseURL     string
	cache       cache.CacheService
	cfg         *config.Config
}

func NewSitemapUsecase(artworkRepo domain.ArtworkRepository, userRepo domain.UserRepository, cache cache.CacheService, cfg *config.Config) *SitemapUsecase {
	return &SitemapUsecase{
		artworkRepo: artworkRepo,
		userRepo:    userRepo,
		baseURL:     cfg.FrontendURL,
		cache:       cache,
		cfg:         cfg,
	}
}

func (u *SitemapUsecase) GenerateSitemap(ctx context.Context) ([]SitemapItem, error) {
	if val, found := u.cache.Get(sitemapCacheKey); found {
		return val.([]SitemapItem), nil
	}

	var items []SitemapItem
	now := time.Now().Format("2006-01-02")

	// Root first, with the highest priority
	statics := []string{"", "/gallery", "/shop", "/artists", "/events", "/login", "/register"}
	for _, s := range statics {
		items = append(items, SitemapItem{
			Loc:        u.baseURL + s,
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}
	items[0].Priority = 1.0

	artworks, err := u.artworkRepo.List(ctx, domain.ArtworkQuery{Limit: 5000})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artworks: %w", err)
	}
	for _, a := range artworks {
		items = append(items, SitemapItem{
			Loc:        fmt.Sprintf("%s/artworks/%s", u.baseURL, a.ID),
			LastMod:    a.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.9,
		})
	}

	artists, err := u.userRepo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}
	for _, a := range artists {
		items = append(items, SitemapItem{
			Loc:        fmt.Sprintf("%s/artists/%s", u.baseURL, a.ID),
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	u.cache.Set(sitemapCacheKey, items, u.cfg.CacheSitemapTTL)
	return items, nil
}
