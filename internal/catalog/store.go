package catalog

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

var (
	ErrMissingTitle = errors.New("artwork title is required")
	ErrMissingImage = errors.New("artwork image is required")
)

// ArtworkData is the caller-supplied description of an artwork being added to
// a favourites or cart collection.
type ArtworkData struct {
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Style     string `json:"style"`
	Dimension string `json:"dimension"`
}

func (d ArtworkData) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(d.Image) == "" {
		return ErrMissingImage
	}
	return nil
}

// SelectionEntry is one favourite or cart item. Its key is always derived from
// ArtistID and ArtworkID, never stored.
type SelectionEntry struct {
	ArtistID  string `json:"artistId"`
	ArtworkID string `json:"artworkId"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Style     string `json:"style"`
	Dimension string `json:"dimension,omitempty"`
	// Quantity is 1 for cart entries and 0 for favourites.
	Quantity int `json:"quantity,omitempty"`
}

func (e SelectionEntry) Key() string          { return MakeKey(e.ArtistID, e.ArtworkID) }
func (e SelectionEntry) StyleValue() string    { return e.Style }
func (e SelectionEntry) PriceText() string     { return e.Price }
func (e SelectionEntry) DimensionText() string { return e.Dimension }

func (e SelectionEntry) MarshalJSON() ([]byte, error) {
	type entry SelectionEntry
	return json.Marshal(struct {
		Key string `json:"key"`
		entry
	}{Key: e.Key(), entry: entry(e)})
}

// Store is the session-scoped owner of followed artists, favourites and cart.
// Collections are only reachable through its methods. Calls are serialised, so
// two toggles from the same session apply in the order they were made.
type Store struct {
	mu         sync.Mutex
	follows    map[string]bool
	favourites []SelectionEntry
	cart       []SelectionEntry
}

func NewStore() *Store {
	return &Store{follows: make(map[string]bool)}
}

// ToggleFollow flips the follow flag for artistID.
func (s *Store) ToggleFollow(artistID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[artistID] = !s.follows[artistID]
	return s.follows[artistID]
}

// IsFollowed reports the follow flag; unknown artists are not followed.
func (s *Store) IsFollowed(artistID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.follows[artistID]
}

// FollowedArtists returns the ids currently followed, sorted.
func (s *Store) FollowedArtists() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.follows))
	for id, followed := range s.follows {
		if followed {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// ToggleFavourite removes the favourite for (artistID, artworkID) when present,
// otherwise inserts it built from data. It returns whether the item is now a
// favourite. Insertion requires a title and an image.
func (s *Store) ToggleFavourite(artistID, artworkID string, data ArtworkData) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		added bool
		err   error
	)
	s.favourites, added, err = toggle(s.favourites, artistID, artworkID, data, 0)
	return added, err
}

func (s *Store) IsFavourite(artistID, artworkID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.favourites, MakeKey(artistID, artworkID)) >= 0
}

// ToggleCart has the same semantics as ToggleFavourite; inserted entries carry
// quantity 1 and removal drops the whole entry.
func (s *Store) ToggleCart(artistID, artworkID string, data ArtworkData) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		added bool
		err   error
	)
	s.cart, added, err = toggle(s.cart, artistID, artworkID, data, 1)
	return added, err
}

func (s *Store) IsInCart(artistID, artworkID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.cart, MakeKey(artistID, artworkID)) >= 0
}

// Favourites returns a copy of the favourites in insertion order.
func (s *Store) Favourites() []SelectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(nonNil(s.favourites))
}

// Cart returns a copy of the cart in insertion order.
func (s *Store) Cart() []SelectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(nonNil(s.cart))
}

func toggle(entries []SelectionEntry, artistID, artworkID string, data ArtworkData, quantity int) ([]SelectionEntry, bool, error) {
	if i := indexOf(entries, MakeKey(artistID, artworkID)); i >= 0 {
		return slices.Delete(entries, i, i+1), false, nil
	}
	if err := data.validate(); err != nil {
		return entries, false, err
	}

	style := strings.TrimSpace(data.Style)
	if style == "" {
		style = StyleOther
	}
	return append(entries, SelectionEntry{
		ArtistID:  artistID,
		ArtworkID: artworkID,
		Title:     strings.TrimSpace(data.Title),
		Image:     strings.TrimSpace(data.Image),
		Price:     data.Price,
		Style:     style,
		Dimension: data.Dimension,
		Quantity:  quantity,
	}), true, nil
}

func indexOf(entries []SelectionEntry, key string) int {
	return slices.IndexFunc(entries, func(e SelectionEntry) bool { return e.Key() == key })
}

func nonNil(entries []SelectionEntry) []SelectionEntry {
	if entries == nil {
		return []SelectionEntry{}
	}
	return entries
}
