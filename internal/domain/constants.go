package domain

// Listing modes
const (
	ModeGallery = "gallery"  // shown in the gallery, not purchasable
	ModeForSale = "for_sale" // listed with a price
)

// Styles offered by the style filter. Free text is still accepted on artworks;
// anything else only matches the "other" option by normalisation.
const (
	StyleRealism       = "realism"
	StyleSurrealism    = "surrealism"
	StyleAbstract      = "abstract"
	StyleImpressionism = "impressionism"
	StyleExpressionism = "expressionism"
	StyleContemporary  = "contemporary"
	StyleOther         = "other"
)

// Upload folders in object storage
const (
	FolderArtworks = "artworks"
	FolderAvatars  = "avatars"
)

// List Exports for API
var ListingModes = []string{
	ModeGallery,
	ModeForSale,
}

var Styles = []string{
	StyleRealism,
	StyleSurrealism,
	StyleAbstract,
	StyleImpressionism,
	StyleExpressionism,
	StyleContemporary,
	StyleOther,
}
