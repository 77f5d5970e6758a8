package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"artmarket-backend/internal/domain"
	"artmarket-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvents(now time.Time) *EventUsecase {
	repo := &stubEventRepo{events: []domain.Event{
		{ID: "past", Title: "Old Show", StartsAt: now.Add(-48 * time.Hour), TicketPrice: "Rp 50.000"},
		{ID: "soon", Title: "Open Studio", Venue: "Ubud", StartsAt: now.Add(24 * time.Hour), TicketPrice: "Rp 75.000"},
	}}
	uc := NewEventUsecase(repo, NewHandoffBuilder("https://wa.me/", "62812"))
	uc.now = func() time.Time { return now }
	return uc
}

func TestListUpcoming(t *testing.T) {
	uc := newEvents(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	events, err := uc.ListUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "soon", events[0].ID)
}

func TestRequestTickets(t *testing.T) {
	uc := newEvents(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))

	h, err := uc.RequestTickets(context.Background(), "soon", TicketRequest{Quantity: 3, Name: " Sari "})
	require.NoError(t, err)
	assert.Equal(t, int64(225000), h.Total)
	assert.Contains(t, h.Message, "3 ticket(s) for Open Studio at Ubud")
	assert.Contains(t, h.Message, "Name: Sari")
	assert.Contains(t, h.Message, "Total: Rp 225.000")

	u, err := url.Parse(h.Link)
	require.NoError(t, err)
	assert.Equal(t, "/62812", u.Path)
	assert.Equal(t, h.Message, u.Query().Get("text"))
}

func TestRequestTicketsRejects(t *testing.T) {
	uc := newEvents(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))

	_, err := uc.RequestTickets(context.Background(), "past", TicketRequest{Quantity: 1, Name: "x"})
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	_, err = uc.RequestTickets(context.Background(), "missing", TicketRequest{Quantity: 1, Name: "x"})
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestFormatAmount(t *testing.T) {
	tests := map[int64]string{
		0:          "Rp 0",
		999:        "Rp 999",
		1000:       "Rp 1.000",
		2500000:    "Rp 2.500.000",
		1234567890: "Rp 1.234.567.890",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatAmount(in))
	}
}

func TestHandoffPriceOnRequest(t *testing.T) {
	h := NewHandoffBuilder("https://wa.me", "").Checkout("", "", nil)
	assert.True(t, strings.HasPrefix(h.Link, "https://wa.me/?text="))
	assert.Equal(t, "price on request", displayPrice(" "))
}
