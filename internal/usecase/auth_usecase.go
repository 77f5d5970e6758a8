package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/utils"

	"github.com/google/uuid"
)

type AuthUsecase struct {
	userRepo           domain.UserRepository
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, atExpiry, rtExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:           userRepo,
		accessTokenExpiry:  atExpiry,
		refreshTokenExpiry: rtExpiry,
	}
}

type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required,max=120"`
	Nickname        string `json:"nickname" validate:"max=60"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful register or login.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

func (u *AuthUsecase) Register(ctx context.Context, req RegisterRequest, device string) (*Session, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         domain.RoleArtist,
		FullName:     strings.TrimSpace(req.FullName),
		Nickname:     strings.TrimSpace(req.Nickname),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, apperr.Internal(err)
	}
	logger.WithContext(ctx).Info().Str("user_id", user.ID).Msg("User registered")

	return u.issue(ctx, user, device)
}

// Login checks credentials. Unknown email and wrong password share one message.
func (u *AuthUsecase) Login(ctx context.Context, req LoginRequest, device string) (*Session, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, apperr.Internal(err)
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	return u.issue(ctx, user, device)
}

func (u *AuthUsecase) issue(ctx context.Context, user *domain.User, device string) (*Session, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, user.Role, u.accessTokenExpiry)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	refreshToken := &domain.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(u.refreshTokenExpiry),
		CreatedAt: now,
		Device:    device,
	}
	if err := u.userRepo.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, apperr.Internal(err)
	}

	return &Session{AccessToken: accessToken, RefreshToken: refreshToken.Token, User: user}, nil
}

// RefreshAccessToken issues a new access token. The refresh token stays valid
// until it expires or is revoked.
func (u *AuthUsecase) RefreshAccessToken(ctx context.Context, refreshTokenStr string) (string, error) {
	rt, err := u.userRepo.GetRefreshToken(ctx, refreshTokenStr)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperr.Unauthorized("Invalid refresh token")
		}
		return "", apperr.Internal(err)
	}
	if rt.Revoked {
		return "", apperr.Unauthorized("Refresh token revoked")
	}
	if time.Now().After(rt.ExpiresAt) {
		return "", apperr.Unauthorized("Refresh token expired")
	}

	user, err := u.GetUser(ctx, rt.UserID)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, u.accessTokenExpiry)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

func (u *AuthUsecase) RevokeToken(ctx context.Context, refreshTokenStr string) error {
	err := u.userRepo.RevokeRefreshToken(ctx, refreshTokenStr)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperr.Internal(err)
	}
	return nil
}

func (u *AuthUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}
