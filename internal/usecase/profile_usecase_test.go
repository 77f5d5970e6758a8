package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(processor domain.ImageProcessor) (*ProfileUsecase, *stubUserRepo, *stubStorage) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Email: "ayu@example.com", FullName: "Ayu"}
	storage := &stubStorage{}
	return NewProfileUsecase(users, storage, processor, newCache(), 1<<20), users, storage
}

func TestUpdateProfile(t *testing.T) {
	uc, _, _ := newProfile(stubProcessor{})

	u, err := uc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{FullName: " Ayu Lestari ", Bio: "Painter"})
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", u.FullName)
	assert.Equal(t, "Painter", u.Bio)

	_, err = uc.UpdateProfile(context.Background(), "u1", domain.ProfileUpdate{FullName: "  "})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "fullName", ae.Details[0].Field)

	_, err = uc.UpdateProfile(context.Background(), "ghost", domain.ProfileUpdate{FullName: "x"})
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestUpdateAvatarReplacesOld(t *testing.T) {
	uc, users, storage := newProfile(stubProcessor{})
	ctx := context.Background()

	first, err := uc.UpdateAvatar(ctx, "u1", pngUpload())
	require.NoError(t, err)
	assert.Empty(t, storage.deleted)

	second, err := uc.UpdateAvatar(ctx, "u1", pngUpload())
	require.NoError(t, err)
	assert.NotEqual(t, first.Avatar, second.Avatar)
	assert.Equal(t, []string{first.Avatar}, storage.deleted)
	assert.Equal(t, second.Avatar, users.users["u1"].Avatar)
}

func TestUpdateAvatarUndecodable(t *testing.T) {
	uc, _, storage := newProfile(stubProcessor{err: errors.New("image: unknown format")})

	_, err := uc.UpdateAvatar(context.Background(), "u1", pngUpload())
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	assert.Empty(t, storage.uploaded)
}

func TestProfileChangesRefreshArtistList(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", FullName: "Ayu", Avatar: "https://cdn.example.com/avatars/old.webp"}
	users.artists = []domain.Artist{{ID: "u1", FullName: "Ayu", Avatar: "https://cdn.example.com/avatars/old.webp"}}
	storage := &stubStorage{}
	shared := newCache()
	artworks := NewArtworkUsecase(&stubArtworkRepo{}, users, storage, stubProcessor{}, shared, testConfig())
	profile := NewProfileUsecase(users, storage, stubProcessor{}, shared, 1<<20)

	_, err := artworks.ListArtists(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, users.listHits)

	updated, err := profile.UpdateAvatar(ctx, "u1", pngUpload())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/avatars/old.webp"}, storage.deleted)
	users.artists[0].Avatar = updated.Avatar

	listed, err := artworks.ListArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, users.listHits)
	assert.Equal(t, updated.Avatar, listed[0].Avatar)

	_, err = profile.UpdateProfile(ctx, "u1", domain.ProfileUpdate{FullName: "Ayu Lestari"})
	require.NoError(t, err)
	_, err = artworks.ListArtists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, users.listHits)
}
