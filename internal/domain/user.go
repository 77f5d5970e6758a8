package domain

import (
	"context"
	"time"
)

type ContextKey string

const (
	UserContextKey    ContextKey = "user"
	SessionContextKey ContextKey = "session"
)

const RoleArtist = "artist"

type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     string    `json:"fullName"`
	Nickname     string    `json:"nickname"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Nickname string `json:"nickname" validate:"max=60"`
	Phone    string `json:"phone" validate:"max=30"`
	Bio      string `json:"bio" validate:"max=2000"`
}

type RefreshToken struct {
	Token     string    `json:"token"` // UUID
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	Revoked   bool      `json:"revoked"`
	Device    string    `json:"device"`
}

// Artist is the public view of a user who lists artworks.
type Artist struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Nickname     string    `json:"nickname"`
	Avatar       string    `json:"avatar"`
	Bio          string    `json:"bio"`
	ArtworkCount int       `json:"artworkCount"`
	Artworks     []Artwork `json:"artworks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (*User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*User, error)

	// Artists
	ListArtists(ctx context.Context) ([]Artist, error)

	// Refresh Tokens
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
