package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"artmarket-backend/config"
	"artmarket-backend/internal/catalog"
	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/cache"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"
)

const (
	artworkCachePrefix = "artworks:"
	artistsCacheKey    = "artists:all"
	sitemapCacheKey    = "sitemap:items"

	// maxListingRows bounds how many rows one listing loads before the
	// catalog engine runs over them. Older rows beyond it are not listed.
	maxListingRows = 1000
	maxPageSize    = 100
)

type ArtworkUsecase struct {
	repo      domain.ArtworkRepository
	userRepo  domain.UserRepository
	storage   domain.FileStorage
	processor domain.ImageProcessor
	cache     cache.CacheService
	cfg       *config.Config
}

func NewArtworkUsecase(repo domain.ArtworkRepository, userRepo domain.UserRepository, storage domain.FileStorage, processor domain.ImageProcessor, cache cache.CacheService, cfg *config.Config) *ArtworkUsecase {
	return &ArtworkUsecase{
		repo:      repo,
		userRepo:  userRepo,
		storage:   storage,
		processor: processor,
		cache:     cache,
		cfg:       cfg,
	}
}

// ArtworkListParams combines the storage query with the engine criteria and
// paging.
type ArtworkListParams struct {
	Mode     string
	OwnerID  string
	Search   string
	Criteria catalog.FilterCriteria
	Page     int
	Limit    int
}

func (uc *ArtworkUsecase) CreateArtwork(ctx context.Context, ownerID string, in domain.ArtworkInput, img domain.ImageUpload) (*domain.Artwork, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Price = strings.TrimSpace(in.Price)
	in.Mode = strings.TrimSpace(in.Mode)
	if in.Mode == "" {
		in.Mode = domain.ModeGallery
	}
	if err := utils.Validate(in); err != nil {
		return nil, err
	}

	imageURL, err := storeImage(ctx, uc.storage, uc.processor, domain.FolderArtworks, img, uc.maxUploadBytes())
	if err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Style:       catalog.NormalizeStyle(in.Style),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Dimension:   strings.TrimSpace(in.Dimension),
		Image:       imageURL,
		Mode:        in.Mode,
	}
	if err := uc.repo.Create(ctx, artwork); err != nil {
		discardUpload(ctx, uc.storage, imageURL)
		return nil, apperr.Internal(err)
	}

	logger.WithContext(ctx).Info().Str("artwork_id", artwork.ID).Str("owner_id", ownerID).Msg("Artwork created")
	uc.invalidate()
	return artwork, nil
}

// ListArtworks loads the base listing (cached per mode, owner and search), runs
// the catalog engine over it and pages the result.
func (uc *ArtworkUsecase) ListArtworks(ctx context.Context, p ArtworkListParams) ([]domain.Artwork, domain.Pagination, error) {
	if p.Mode != "" && !slices.Contains(domain.ListingModes, p.Mode) {
		return nil, domain.Pagination{}, apperr.Validation("Validation failed",
			apperr.FieldError{Field: "mode", Message: "must be one of [gallery for_sale]"})
	}

	base, err := uc.baseListing(ctx, domain.ArtworkQuery{
		Mode:    p.Mode,
		OwnerID: p.OwnerID,
		Search:  strings.TrimSpace(p.Search),
		Limit:   maxListingRows,
	})
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	filtered := catalog.Apply(base, p.Criteria)
	page, limit := utils.ClampPage(p.Page, p.Limit, maxPageSize)
	return paginate(filtered, page, limit), domain.NewPagination(page, limit, int64(len(filtered))), nil
}

func (uc *ArtworkUsecase) baseListing(ctx context.Context, q domain.ArtworkQuery) ([]domain.Artwork, error) {
	key := fmt.Sprintf("%s%s:%s:%s", artworkCachePrefix, q.Mode, q.OwnerID, strings.ToLower(q.Search))
	if val, found := uc.cache.Get(key); found {
		return val.([]domain.Artwork), nil
	}

	artworks, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if q.Limit > 0 && len(artworks) >= q.Limit {
		logger.WithContext(ctx).Warn().Str("cache_key", key).Int("limit", q.Limit).Msg("Artwork listing truncated")
	}
	uc.cache.Set(key, artworks, uc.cfg.CacheArtworkTTL)
	return artworks, nil
}

func (uc *ArtworkUsecase) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Artwork")
	}
	return a, nil
}

// UpdateArtwork applies patch when userID owns the artwork.
func (uc *ArtworkUsecase) UpdateArtwork(ctx context.Context, userID, id string, patch domain.ArtworkPatch) (*domain.Artwork, error) {
	if err := utils.Validate(patch); err != nil {
		return nil, err
	}

	a, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		a.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		a.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Style != nil {
		a.Style = catalog.NormalizeStyle(*patch.Style)
	}
	if patch.Category != nil {
		a.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Price != nil {
		a.Price = strings.TrimSpace(*patch.Price)
	}
	if patch.Dimension != nil {
		a.Dimension = strings.TrimSpace(*patch.Dimension)
	}
	if patch.Mode != nil {
		a.Mode = *patch.Mode
	}

	if a.Title == "" {
		return nil, apperr.Validation("Validation failed", apperr.FieldError{Field: "title", Message: "is required"})
	}
	if a.Mode == domain.ModeForSale && a.Price == "" {
		return nil, apperr.Validation("Validation failed", apperr.FieldError{Field: "price", Message: "is required"})
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, repoError(err, "Artwork")
	}
	uc.invalidate()
	return a, nil
}

// DeleteArtwork removes an owned artwork and, best effort, its image.
func (uc *ArtworkUsecase) DeleteArtwork(ctx context.Context, userID, id string) error {
	a, err := uc.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return repoError(err, "Artwork")
	}
	if a.Image != "" {
		discardUpload(ctx, uc.storage, a.Image)
	}
	uc.invalidate()
	return nil
}

func (uc *ArtworkUsecase) owned(ctx context.Context, userID, id string) (*domain.Artwork, error) {
	a, err := uc.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != userID {
		return nil, apperr.Forbidden("You do not own this artwork")
	}
	return a, nil
}

// ListArtists returns every artist with a listing, cached with the artworks.
func (uc *ArtworkUsecase) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	if val, found := uc.cache.Get(artistsCacheKey); found {
		return val.([]domain.Artist), nil
	}
	artists, err := uc.userRepo.ListArtists(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	uc.cache.Set(artistsCacheKey, artists, uc.cfg.CacheArtworkTTL)
	return artists, nil
}

// GetArtist returns an artist profile with their artworks filtered by c.
func (uc *ArtworkUsecase) GetArtist(ctx context.Context, id string, c catalog.FilterCriteria) (*domain.Artist, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Artist")
	}

	artworks, err := uc.baseListing(ctx, domain.ArtworkQuery{OwnerID: id, Limit: maxListingRows})
	if err != nil {
		return nil, err
	}

	return &domain.Artist{
		ID:           user.ID,
		FullName:     user.FullName,
		Nickname:     user.Nickname,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		ArtworkCount: len(artworks),
		Artworks:     catalog.Apply(artworks, c),
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (uc *ArtworkUsecase) invalidate() {
	uc.cache.DeletePrefix(artworkCachePrefix)
	invalidateArtists(uc.cache)
}

// invalidateArtists drops every cached view that shows artist names or
// avatars.
func invalidateArtists(c cache.CacheService) {
	c.Delete(artistsCacheKey)
	c.Delete(sitemapCacheKey)
}

func (uc *ArtworkUsecase) maxUploadBytes() int64 {
	return uc.cfg.MaxUploadSizeMB << 20
}

// paginate returns one page of items. Pages past the end are empty, and page
// is compared before multiplying so a huge page number cannot overflow.
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 || page-1 >= (len(items)+limit-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := min(start+limit, len(items))
	return items[start:end]
}
