package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"artmarket-backend/internal/catalog"
	"artmarket-backend/internal/domain"
)

// HandoffBuilder turns a cart or ticket request into a pre-filled message for
// the messaging app configured by MESSAGING_BASE_URL and MESSAGING_PHONE.
type HandoffBuilder struct {
	baseURL string
	phone   string
}

func NewHandoffBuilder(baseURL, phone string) *HandoffBuilder {
	return &HandoffBuilder{
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		phone:   digitsOnly(phone),
	}
}

// Checkout lists every cart entry and a total summed from the parsed prices.
func (b *HandoffBuilder) Checkout(name, note string, cart []catalog.SelectionEntry) domain.Handoff {
	var (
		sb    strings.Builder
		total int64
	)
	sb.WriteString("Hello, I would like to purchase the following artworks")
	if name != "" {
		fmt.Fprintf(&sb, " (%s)", name)
	}
	sb.WriteString(":\n")
	for i, e := range cart {
		qty := max(e.Quantity, 1)
		fmt.Fprintf(&sb, "%d. %s - %s x %d\n", i+1, e.Title, displayPrice(e.Price), qty)
		total += catalog.ParsePrice(e.Price) * int64(qty)
	}
	fmt.Fprintf(&sb, "Total: %s", formatAmount(total))
	if note = strings.TrimSpace(note); note != "" {
		fmt.Fprintf(&sb, "\nNote: %s", note)
	}
	return b.handoff(sb.String(), total)
}

// Ticket builds the request for quantity tickets to ev.
func (b *HandoffBuilder) Ticket(ev *domain.Event, quantity int, name string) domain.Handoff {
	total := catalog.ParsePrice(ev.TicketPrice) * int64(quantity)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello, I would like %d ticket(s) for %s", quantity, ev.Title)
	if ev.Venue != "" {
		fmt.Fprintf(&sb, " at %s", ev.Venue)
	}
	fmt.Fprintf(&sb, " on %s", ev.StartsAt.Format("2 Jan 2006 15:04"))
	if name != "" {
		fmt.Fprintf(&sb, ".\nName: %s", name)
	}
	fmt.Fprintf(&sb, "\nTotal: %s", formatAmount(total))
	return b.handoff(sb.String(), total)
}

func (b *HandoffBuilder) handoff(msg string, total int64) domain.Handoff {
	return domain.Handoff{
		Message: msg,
		Link:    b.baseURL + b.phone + "?text=" + url.QueryEscape(msg),
		Total:   total,
	}
}

func displayPrice(p string) string {
	if strings.TrimSpace(p) == "" {
		return "price on request"
	}
	return p
}

// formatAmount groups digits with dots, e.g. 2500000 -> "Rp 2.500.000".
func formatAmount(v int64) string {
	s := fmt.Sprintf("%d", v)
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return "Rp " + string(out)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
