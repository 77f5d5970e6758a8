package usecase

import (
	"context"
	"strings"
	"time"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"
)

type EventUsecase struct {
	repo    domain.EventRepository
	handoff *HandoffBuilder
	now     func() time.Time
}

func NewEventUsecase(repo domain.EventRepository, handoff *HandoffBuilder) *EventUsecase {
	return &EventUsecase{repo: repo, handoff: handoff, now: time.Now}
}

type TicketRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1,max=10"`
	Name     string `json:"name" validate:"required,max=120"`
}

func (u *EventUsecase) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	events, err := u.repo.ListUpcoming(ctx, u.now())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return events, nil
}

func (u *EventUsecase) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Event")
	}
	return ev, nil
}

// RequestTickets builds the ticket handoff. Past events are rejected.
func (u *EventUsecase) RequestTickets(ctx context.Context, id string, req TicketRequest) (*domain.Handoff, error) {
	ev, err := u.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.StartsAt.Before(u.now()) {
		return nil, apperr.BadRequest("Event has already started")
	}
	h := u.handoff.Ticket(ev, req.Quantity, strings.TrimSpace(req.Name))
	return &h, nil
}
