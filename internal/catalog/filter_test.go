package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ArtworkID
	}
	return out
}

func TestApplyZeroCriteriaPassesThrough(t *testing.T) {
	items := []Record{{ArtworkID: "1"}, {ArtworkID: "2"}}
	got := Apply(items, FilterCriteria{})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply([]Record(nil), ParseCriteria("realism", "asc", "<80", ">120"))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyHeightBandKeepsUnparseable(t *testing.T) {
	items := []Record{
		{ArtworkID: "na", Dimension: "N/A"},
		{ArtworkID: "small", Dimension: "Dimension: 50 cm x 50 cm"},
		{ArtworkID: "large", Dimension: "Dimension: 130 cm x 50 cm"},
	}

	small := Apply(items, FilterCriteria{HeightBand: BandSmall})
	assert.Equal(t, []string{"na", "small"}, ids(small))

	large := Apply(items, FilterCriteria{HeightBand: BandLarge})
	assert.Equal(t, []string{"na", "large"}, ids(large))
}

func TestApplyBandBoundaries(t *testing.T) {
	items := []Record{
		{ArtworkID: "80", Dimension: "80 cm x 10 cm"},
		{ArtworkID: "120", Dimension: "120 cm x 10 cm"},
		{ArtworkID: "79.9", Dimension: "79.9 cm x 10 cm"},
		{ArtworkID: "120.1", Dimension: "120.1 cm x 10 cm"},
	}

	assert.Equal(t, []string{"80", "120"}, ids(Apply(items, FilterCriteria{HeightBand: BandMedium})))
	assert.Equal(t, []string{"79.9"}, ids(Apply(items, FilterCriteria{HeightBand: BandSmall})))
	assert.Equal(t, []string{"120.1"}, ids(Apply(items, FilterCriteria{HeightBand: BandLarge})))
}

func TestApplyHeightAndWidthUseSameDimension(t *testing.T) {
	items := []Record{
		{ArtworkID: "tall", Dimension: "130 cm x 60 cm"},
		{ArtworkID: "wide", Dimension: "60 cm x 130 cm"},
	}
	got := Apply(items, FilterCriteria{HeightBand: BandLarge, WidthBand: BandSmall})
	assert.Equal(t, []string{"tall"}, ids(got))
}

func TestApplyMetaTakesPrecedence(t *testing.T) {
	items := []Record{{ArtworkID: "1", Meta: "50 cm x 50 cm", Dimension: "200 cm x 200 cm"}}
	assert.Len(t, Apply(items, FilterCriteria{HeightBand: BandSmall}), 1)
	assert.Empty(t, Apply(items, FilterCriteria{HeightBand: BandLarge}))
}

func TestApplyPriceOrder(t *testing.T) {
	items := []Record{
		{ArtworkID: "mid", Price: "Rp 2.500.000"},
		{ArtworkID: "low", Price: "Rp 500.000"},
		{ArtworkID: "high", Price: "Rp 10.000.000"},
	}

	assert.Equal(t, []string{"low", "mid", "high"}, ids(Apply(items, FilterCriteria{PriceOrder: PriceOrderAsc})))
	assert.Equal(t, []string{"high", "mid", "low"}, ids(Apply(items, FilterCriteria{PriceOrder: PriceOrderDesc})))
	assert.Equal(t, []string{"mid", "low", "high"}, ids(Apply(items, FilterCriteria{PriceOrder: PriceOrderNone})))

	// source untouched
	assert.Equal(t, []string{"mid", "low", "high"}, ids(items))
}

func TestApplyPriceSortIsStable(t *testing.T) {
	items := []Record{
		{ArtworkID: "a", Price: "Rp 100"},
		{ArtworkID: "free", Price: "Free"},
		{ArtworkID: "b", Price: "Rp 100"},
	}
	assert.Equal(t, []string{"free", "a", "b"}, ids(Apply(items, FilterCriteria{PriceOrder: PriceOrderAsc})))
	assert.Equal(t, []string{"a", "b", "free"}, ids(Apply(items, FilterCriteria{PriceOrder: PriceOrderDesc})))
}

func TestApplyStyle(t *testing.T) {
	surreal := Record{ArtworkID: "s", Style: "Surrealism"}
	plain := Record{ArtworkID: "p"}

	assert.Empty(t, Apply([]Record{surreal}, FilterCriteria{Style: "realism"}))
	assert.Len(t, Apply([]Record{surreal}, FilterCriteria{Style: StyleAll}), 1)
	assert.Len(t, Apply([]Record{surreal}, FilterCriteria{Style: "surrealism"}), 1)

	assert.Empty(t, Apply([]Record{plain}, FilterCriteria{Style: "realism"}))
	assert.Len(t, Apply([]Record{plain}, FilterCriteria{Style: "other"}), 1)
}

func TestApplyIsDeterministic(t *testing.T) {
	items := []Record{
		{ArtworkID: "1", Style: "abstract", Price: "Rp 300", Dimension: "70 cm x 70 cm"},
		{ArtworkID: "2", Style: "Abstract", Price: "Rp 100", Dimension: "N/A"},
		{ArtworkID: "3", Style: "realism", Price: "Rp 200", Dimension: "70 cm x 70 cm"},
		{ArtworkID: "4", Style: "abstract", Price: "Rp 100", Dimension: "90 cm x 70 cm"},
	}
	c := ParseCriteria("abstract", "asc", "<80", "all")

	first := Apply(items, c)
	second := Apply(items, c)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"2", "1"}, ids(first))
}

func TestParseCriteria(t *testing.T) {
	c := ParseCriteria("", "sideways", "huge", "")
	assert.Equal(t, FilterCriteria{Style: StyleAll, PriceOrder: PriceOrderNone, HeightBand: BandAll, WidthBand: BandAll}, c)

	c = ParseCriteria(" Realism ", "DESC", "80-120", ">120")
	assert.Equal(t, "Realism", c.Style)
	assert.Equal(t, PriceOrderDesc, c.PriceOrder)
	assert.Equal(t, BandMedium, c.HeightBand)
	assert.Equal(t, BandLarge, c.WidthBand)
}
