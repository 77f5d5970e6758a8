package usecase

import (
	"context"
	"errors"
	"strings"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/cache"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"
)

type ProfileUsecase struct {
	userRepo  domain.UserRepository
	storage   domain.FileStorage
	processor domain.ImageProcessor
	cache     cache.CacheService
	maxUpload int64
}

func NewProfileUsecase(userRepo domain.UserRepository, storage domain.FileStorage, processor domain.ImageProcessor, cache cache.CacheService, maxUploadBytes int64) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:  userRepo,
		storage:   storage,
		processor: processor,
		cache:     cache,
		maxUpload: maxUploadBytes,
	}
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "User")
	}
	return user, nil
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) (*domain.User, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Bio = strings.TrimSpace(p.Bio)
	if err := utils.Validate(p); err != nil {
		return nil, err
	}

	user, err := u.userRepo.UpdateProfile(ctx, userID, p)
	if err != nil {
		return nil, repoError(err, "User")
	}
	invalidateArtists(u.cache)
	return user, nil
}

// UpdateAvatar stores a new avatar and deletes the previous one. A failed
// delete is logged and does not fail the request.
func (u *ProfileUsecase) UpdateAvatar(ctx context.Context, userID string, img domain.ImageUpload) (*domain.User, error) {
	current, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "User")
	}

	url, err := storeImage(ctx, u.storage, u.processor, domain.FolderAvatars, img, u.maxUpload)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.UpdateAvatar(ctx, userID, url)
	if err != nil {
		discardUpload(ctx, u.storage, url)
		return nil, repoError(err, "User")
	}
	// The artist list must not keep pointing at the file deleted below.
	invalidateArtists(u.cache)

	if current.Avatar != "" {
		discardUpload(ctx, u.storage, current.Avatar)
	}
	return user, nil
}

// storeImage validates, processes and uploads an image into folder.
func storeImage(ctx context.Context, storage domain.FileStorage, processor domain.ImageProcessor, folder string, img domain.ImageUpload, maxBytes int64) (string, error) {
	if img.File == nil {
		return "", apperr.Validation("Validation failed", apperr.FieldError{Field: "file", Message: "is required"})
	}
	if maxBytes > 0 && img.Size > maxBytes {
		return "", apperr.TooLarge("Image exceeds the upload size limit")
	}
	if !utils.IsAllowedImage(img.ContentType, img.Filename) {
		return "", apperr.Validation("Validation failed", apperr.FieldError{Field: "file", Message: "must be a JPEG, PNG, GIF or WebP image"})
	}

	data, contentType, err := processor.Process(img.File, img.Filename)
	if err != nil {
		return "", apperr.BadRequest("Could not read image").WithCause(err)
	}
	url, err := storage.UploadBuffer(ctx, folder, data, contentType)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return url, nil
}

func discardUpload(ctx context.Context, storage domain.FileStorage, url string) {
	if err := storage.DeleteFile(ctx, url); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("url", url).Msg("Failed to delete stored file")
	}
}

// repoError maps repository sentinels for resource.
func repoError(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound(resource)
	}
	if apperr.As(err) != nil {
		return err
	}
	return apperr.Internal(err)
}
