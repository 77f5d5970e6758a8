package postgres

import (
	"context"
	"time"

	"artmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) domain.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id::text, title, venue, starts_at, ticket_price, image, description, created_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Title, &e.Venue, &e.StartsAt, &e.TicketPrice, &e.Image, &e.Description, &e.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE starts_at >= $1 ORDER BY starts_at ASC`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
}
