// Package catalog holds the browsing core shared by every listing endpoint:
// composite keys for (artist, artwork) pairs, the per-session selection store,
// the dimension and price parsers and the filter engine.
//
// Nothing in this package performs I/O. Callers pass already-loaded records in
// and get derived values back.
package catalog

// KeySeparator joins the artist and artwork ids in a composite key.
const KeySeparator = "-"

// MakeKey derives the identity of an (artist, artwork) pair.
// Ids that themselves contain KeySeparator may collide; this is a known limitation.
func MakeKey(artistID, artworkID string) string {
	return artistID + KeySeparator + artworkID
}
