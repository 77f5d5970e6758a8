package domain

import (
	"context"
	"time"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"startsAt"`
	TicketPrice string    `json:"ticketPrice"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EventRepository interface {
	ListUpcoming(ctx context.Context, from time.Time) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// Handoff is a pre-filled message for an external messaging app. It replaces
// payment: the buyer sends the message and the seller follows up manually.
type Handoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Total   int64  `json:"total"`
}
