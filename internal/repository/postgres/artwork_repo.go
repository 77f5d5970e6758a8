package postgres

import (
	"context"
	"fmt"
	"strings"

	"artmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type artworkRepository struct {
	db DBTX
}

func NewArtworkRepository(db DBTX) domain.ArtworkRepository {
	return &artworkRepository{db: db}
}

const artworkColumns = `id::text, owner_id::text, title, description, style, category, price, dimension, image, mode, created_at, updated_at`

func scanArtwork(row pgx.Row) (*domain.Artwork, error) {
	var a domain.Artwork
	err := row.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Description, &a.Style, &a.Category,
		&a.Price, &a.Dimension, &a.Image, &a.Mode, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *artworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO artworks (owner_id, title, description, style, category, price, dimension, image, mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text, created_at, updated_at`,
		a.OwnerID, a.Title, a.Description, a.Style, a.Category, a.Price, a.Dimension, a.Image, a.Mode)
	return mapErr(row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt))
}

func (r *artworkRepository) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return scanArtwork(r.db.QueryRow(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id = $1`, id))
}

// List loads artworks newest first. Style, size and price ordering are left
// to the catalog engine, which works on the display text.
func (r *artworkRepository) List(ctx context.Context, q domain.ArtworkQuery) ([]domain.Artwork, error) {
	if q.OwnerID != "" && !validID(q.OwnerID) {
		return []domain.Artwork{}, nil
	}
	sql, args := buildListQuery(q)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	artworks := []domain.Artwork{}
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, *a)
	}
	return artworks, rows.Err()
}

// likeEscaper neutralises LIKE wildcards in user search text. Backslash is
// Postgres' default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func buildListQuery(q domain.ArtworkQuery) (string, []any) {
	var (
		where []string
		args  []any
	)
	if q.Mode != "" {
		args = append(args, q.Mode)
		where = append(where, fmt.Sprintf("mode = $%d", len(args)))
	}
	if q.OwnerID != "" {
		args = append(args, q.OwnerID)
		where = append(where, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		args = append(args, "%"+likeEscaper.Replace(s)+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + artworkColumns + ` FROM artworks`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id")
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	return sb.String(), args
}

func (r *artworkRepository) Update(ctx context.Context, a *domain.Artwork) error {
	row := r.db.QueryRow(ctx, `
		UPDATE artworks
		SET title = $2, description = $3, style = $4, category = $5, price = $6,
		    dimension = $7, image = $8, mode = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID, a.Title, a.Description, a.Style, a.Category, a.Price, a.Dimension, a.Image, a.Mode)
	return mapErr(row.Scan(&a.UpdatedAt))
}

func (r *artworkRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
