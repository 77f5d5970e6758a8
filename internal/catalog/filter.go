package catalog

import (
	"cmp"
	"slices"
	"strings"
)

const (
	// StyleAll disables the style stage.
	StyleAll = "all"
	// StyleOther is the style of records that carry none.
	StyleOther = "other"
)

// PriceOrder controls the price stage. It never excludes items.
type PriceOrder string

const (
	PriceOrderNone PriceOrder = "none"
	PriceOrderAsc  PriceOrder = "asc"
	PriceOrderDesc PriceOrder = "desc"
)

// PriceOrders lists the accepted price orderings.
var PriceOrders = []PriceOrder{PriceOrderNone, PriceOrderAsc, PriceOrderDesc}

// Band is a size range label applied to one parsed dimension axis.
type Band string

const (
	BandAll    Band = "all"
	BandSmall  Band = "<80"
	BandMedium Band = "80-120"
	BandLarge  Band = ">120"
)

// Bands lists the accepted band labels.
var Bands = []Band{BandAll, BandSmall, BandMedium, BandLarge}

func (b Band) active() bool {
	return b != "" && b != BandAll
}

// Admits reports whether a parsed value survives the band.
// A nil value always survives: the engine only drops what it can disqualify.
// 80 and 120 belong to the 80-120 band.
func (b Band) Admits(v *float64) bool {
	if !b.active() || v == nil {
		return true
	}
	switch b {
	case BandSmall:
		return *v < 80
	case BandMedium:
		return *v >= 80 && *v <= 120
	case BandLarge:
		return *v > 120
	}
	return true
}

// FilterCriteria is the per-request configuration of the engine.
// The zero value passes every item through in input order.
type FilterCriteria struct {
	Style      string     `json:"style"`
	PriceOrder PriceOrder `json:"priceOrder"`
	HeightBand Band       `json:"heightBand"`
	WidthBand  Band       `json:"widthBand"`
}

// ParseCriteria builds criteria from raw query values. Unknown orders and bands
// fall back to none/all; style is kept as free text.
func ParseCriteria(style, priceOrder, heightBand, widthBand string) FilterCriteria {
	c := FilterCriteria{
		Style:      strings.TrimSpace(style),
		PriceOrder: PriceOrderNone,
		HeightBand: BandAll,
		WidthBand:  BandAll,
	}
	if c.Style == "" {
		c.Style = StyleAll
	}
	if o := PriceOrder(strings.ToLower(strings.TrimSpace(priceOrder))); slices.Contains(PriceOrders, o) {
		c.PriceOrder = o
	}
	if b := Band(strings.TrimSpace(heightBand)); slices.Contains(Bands, b) {
		c.HeightBand = b
	}
	if b := Band(strings.TrimSpace(widthBand)); slices.Contains(Bands, b) {
		c.WidthBand = b
	}
	return c
}

// Listing is any artwork-like record the engine can filter.
type Listing interface {
	StyleValue() string
	PriceText() string
	DimensionText() string
}

// NormalizeStyle lower-cases a style and maps an empty one to StyleOther.
func NormalizeStyle(style string) string {
	s := strings.ToLower(strings.TrimSpace(style))
	if s == "" {
		return StyleOther
	}
	return s
}

// Apply runs the style, range and price stages over items and returns a new
// slice. items is never modified and the result is never nil.
func Apply[T Listing](items []T, c FilterCriteria) []T {
	out := make([]T, 0, len(items))

	wantStyle := strings.ToLower(strings.TrimSpace(c.Style))
	filterStyle := wantStyle != "" && wantStyle != StyleAll
	filterSize := c.HeightBand.active() || c.WidthBand.active()

	for _, item := range items {
		if filterStyle && NormalizeStyle(item.StyleValue()) != wantStyle {
			continue
		}
		if filterSize {
			d := ParseDimension(item.DimensionText())
			if !c.HeightBand.Admits(d.Height) || !c.WidthBand.Admits(d.Width) {
				continue
			}
		}
		out = append(out, item)
	}

	if c.PriceOrder != PriceOrderAsc && c.PriceOrder != PriceOrderDesc {
		return out
	}

	type priced struct {
		item  T
		price int64
	}
	ranked := make([]priced, len(out))
	for i, item := range out {
		ranked[i] = priced{item: item, price: ParsePrice(item.PriceText())}
	}
	slices.SortStableFunc(ranked, func(a, b priced) int {
		if c.PriceOrder == PriceOrderDesc {
			return cmp.Compare(b.price, a.price)
		}
		return cmp.Compare(a.price, b.price)
	})
	for i := range ranked {
		out[i] = ranked[i].item
	}
	return out
}

// Record is a plain artwork-like record supplied by a client. Either Meta or
// Dimension may carry the size text; Meta wins when both are set.
type Record struct {
	ArtistID  string `json:"artistId"`
	ArtworkID string `json:"artworkId"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Style     string `json:"style,omitempty"`
	Meta      string `json:"meta,omitempty"`
	Dimension string `json:"dimension,omitempty"`
}

func (r Record) StyleValue() string { return r.Style }
func (r Record) PriceText() string  { return r.Price }

func (r Record) DimensionText() string {
	if r.Meta != "" {
		return r.Meta
	}
	return r.Dimension
}
