package usecase

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"artmarket-backend/config"
	"artmarket-backend/internal/domain"
	memcache "artmarket-backend/internal/infrastructure/cache"
	"artmarket-backend/pkg/cache"
)

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL:        "https://art.example.com",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		CacheArtworkTTL:    time.Minute,
		CacheSitemapTTL:    time.Minute,
		SessionTTL:         time.Minute,
		MaxUploadSizeMB:    1,
		MessagingBaseURL:   "https://wa.me",
		MessagingPhone:     "+62 812-0000",
	}
}

func newCache() cache.CacheService {
	return memcache.NewMemoryCache(time.Minute, time.Minute)
}

type stubUserRepo struct {
	mu       sync.Mutex
	seq      int
	users    map[string]*domain.User
	tokens   map[string]*domain.RefreshToken
	artists  []domain.Artist
	listHits int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}, tokens: map[string]*domain.RefreshToken{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, p domain.ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.FullName, u.Nickname, u.Phone, u.Bio = p.FullName, p.Nickname, p.Phone, p.Bio
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) UpdateAvatar(_ context.Context, id, avatar string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Avatar = avatar
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) ListArtists(context.Context) ([]domain.Artist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listHits++
	return r.artists, nil
}

func (r *stubUserRepo) SaveRefreshToken(_ context.Context, t *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *stubUserRepo) GetRefreshToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubUserRepo) RevokeRefreshToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return domain.ErrNotFound
	}
	t.Revoked = true
	return nil
}

type stubArtworkRepo struct {
	mu        sync.Mutex
	seq       int
	artworks  []domain.Artwork
	listCalls int
	createErr error
}

func (r *stubArtworkRepo) Create(_ context.Context, a *domain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	a.ID = fmt.Sprintf("art-%d", r.seq)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.artworks = append([]domain.Artwork{*a}, r.artworks...)
	return nil
}

func (r *stubArtworkRepo) GetByID(_ context.Context, id string) (*domain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.artworks {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubArtworkRepo) List(_ context.Context, q domain.ArtworkQuery) ([]domain.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := []domain.Artwork{}
	for _, a := range r.artworks {
		if q.Mode != "" && a.Mode != q.Mode {
			continue
		}
		if q.OwnerID != "" && a.OwnerID != q.OwnerID {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *stubArtworkRepo) Update(_ context.Context, a *domain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.artworks {
		if r.artworks[i].ID == a.ID {
			r.artworks[i] = *a
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubArtworkRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.artworks, func(a domain.Artwork) bool { return a.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	r.artworks = slices.Delete(r.artworks, i, i+1)
	return nil
}

type stubEventRepo struct {
	events []domain.Event
}

func (r *stubEventRepo) ListUpcoming(_ context.Context, from time.Time) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range r.events {
		if !e.StartsAt.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubStorage struct {
	mu       sync.Mutex
	seq      int
	uploaded []string
	deleted  []string
}

func (s *stubStorage) UploadBuffer(_ context.Context, folder string, _ []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	url := fmt.Sprintf("https://cdn.example.com/%s/%d.webp", folder, s.seq)
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *stubStorage) DeleteFile(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

type stubProcessor struct {
	err error
}

func (p stubProcessor) Process(r io.Reader, _ string) ([]byte, string, error) {
	if p.err != nil {
		return nil, "", p.err
	}
	data, err := io.ReadAll(r)
	return data, "image/webp", err
}

func pngUpload() domain.ImageUpload {
	return domain.ImageUpload{
		File:        strings.NewReader("fake-png"),
		Filename:    "art.png",
		ContentType: "image/png",
		Size:        8,
	}
}
