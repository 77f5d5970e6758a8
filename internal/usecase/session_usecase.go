package usecase

import (
	"errors"
	"sync"
	"time"

	"artmarket-backend/internal/catalog"
	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/cache"
)

const sessionKeyPrefix = "session:"

// SessionUsecase owns one catalog.Store per visitor session. Stores live in
// memory only and expire after ttl without access.
type SessionUsecase struct {
	sessions cache.CacheService
	ttl      time.Duration
	handoff  *HandoffBuilder
	mu       sync.Mutex
}

func NewSessionUsecase(sessions cache.CacheService, ttl time.Duration, handoff *HandoffBuilder) *SessionUsecase {
	return &SessionUsecase{sessions: sessions, ttl: ttl, handoff: handoff}
}

// SelectionRequest toggles one artwork in favourites or cart.
type SelectionRequest struct {
	ArtistID  string `json:"artistId" validate:"required"`
	ArtworkID string `json:"artworkId" validate:"required"`
	catalog.ArtworkData
}

type CheckoutRequest struct {
	Name string `json:"name" validate:"max=120"`
	Note string `json:"note" validate:"max=500"`
}

type SessionSnapshot struct {
	Follows    []string                 `json:"follows"`
	Favourites []catalog.SelectionEntry `json:"favourites"`
	Cart       []catalog.SelectionEntry `json:"cart"`
}

// Store returns the store for sessionID, creating it on first use. Every
// access slides the expiry.
func (u *SessionUsecase) Store(sessionID string) *catalog.Store {
	key := sessionKeyPrefix + sessionID

	u.mu.Lock()
	defer u.mu.Unlock()
	if v, ok := u.sessions.Get(key); ok {
		store := v.(*catalog.Store)
		u.sessions.Set(key, store, u.ttl)
		return store
	}
	store := catalog.NewStore()
	u.sessions.Set(key, store, u.ttl)
	return store
}

func (u *SessionUsecase) Snapshot(sessionID string) SessionSnapshot {
	s := u.Store(sessionID)
	return SessionSnapshot{
		Follows:    s.FollowedArtists(),
		Favourites: s.Favourites(),
		Cart:       s.Cart(),
	}
}

func (u *SessionUsecase) ToggleFollow(sessionID, artistID string) bool {
	return u.Store(sessionID).ToggleFollow(artistID)
}

// ToggleFavourite returns the composite key and whether the item is now a
// favourite.
func (u *SessionUsecase) ToggleFavourite(sessionID string, req SelectionRequest) (string, bool, error) {
	added, err := u.Store(sessionID).ToggleFavourite(req.ArtistID, req.ArtworkID, req.ArtworkData)
	if err != nil {
		return "", false, selectionError(err)
	}
	return catalog.MakeKey(req.ArtistID, req.ArtworkID), added, nil
}

func (u *SessionUsecase) ToggleCart(sessionID string, req SelectionRequest) (string, bool, error) {
	added, err := u.Store(sessionID).ToggleCart(req.ArtistID, req.ArtworkID, req.ArtworkData)
	if err != nil {
		return "", false, selectionError(err)
	}
	return catalog.MakeKey(req.ArtistID, req.ArtworkID), added, nil
}

// Checkout builds the purchase handoff for the current cart. The cart is left
// as is: the purchase completes outside this service.
func (u *SessionUsecase) Checkout(sessionID string, req CheckoutRequest) (*domain.Handoff, error) {
	cart := u.Store(sessionID).Cart()
	if len(cart) == 0 {
		return nil, apperr.BadRequest("Cart is empty")
	}
	h := u.handoff.Checkout(req.Name, req.Note, cart)
	return &h, nil
}

func selectionError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrMissingTitle):
		return apperr.Validation("Validation failed", apperr.FieldError{Field: "title", Message: "is required"})
	case errors.Is(err, catalog.ErrMissingImage):
		return apperr.Validation("Validation failed", apperr.FieldError{Field: "image", Message: "is required"})
	}
	return apperr.Internal(err)
}
