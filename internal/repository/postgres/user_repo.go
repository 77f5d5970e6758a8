package postgres

import (
	"context"
	"strings"

	"artmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id::text, email, password_hash, role, full_name, nickname, phone, avatar, bio, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FullName, &u.Nickname,
		&u.Phone, &u.Avatar, &u.Bio, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, full_name, nickname, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, created_at, updated_at`,
		strings.ToLower(user.Email), user.PasswordHash, user.Role, user.FullName, user.Nickname, user.Phone)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email)))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		UPDATE users SET full_name = $2, nickname = $3, phone = $4, bio = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.FullName, p.Nickname, p.Phone, p.Bio))
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		UPDATE users SET avatar = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, avatar))
}

// ListArtists returns every user with at least one artwork, most prolific first.
func (r *userRepository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id::text, u.full_name, u.nickname, u.avatar, u.bio, u.created_at, COUNT(a.id)
		FROM users u
		JOIN artworks a ON a.owner_id = u.id
		GROUP BY u.id
		ORDER BY COUNT(a.id) DESC, u.full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		var a domain.Artist
		if err := rows.Scan(&a.ID, &a.FullName, &a.Nickname, &a.Avatar, &a.Bio, &a.CreatedAt, &a.ArtworkCount); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *userRepository) SaveRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (token, user_id, expires_at, device)
		VALUES ($1, $2, $3, $4)`,
		token.Token, token.UserID, token.ExpiresAt, token.Device)
	return err
}

func (r *userRepository) GetRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if !validID(token) {
		return nil, domain.ErrNotFound
	}
	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, `
		SELECT token::text, user_id::text, expires_at, created_at, revoked, device
		FROM refresh_tokens WHERE token = $1`, token).
		Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt, &rt.Revoked, &rt.Device)
	if err != nil {
		return nil, mapErr(err)
	}
	return &rt, nil
}

func (r *userRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	if !validID(token) {
		return domain.ErrNotFound
	}
	_, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token)
	return mapErr(err)
}
