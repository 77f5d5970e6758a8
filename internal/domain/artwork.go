package domain

import (
	"context"
	"io"
	"time"
)

type Artwork struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"artistId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Style       string    `json:"style"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`     // display text, e.g. "Rp 2.500.000"
	Dimension   string    `json:"dimension"` // display text, e.g. "60 cm x 90 cm"
	Image       string    `json:"image"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Artwork satisfies catalog.Listing.
func (a Artwork) StyleValue() string    { return a.Style }
func (a Artwork) PriceText() string     { return a.Price }
func (a Artwork) DimensionText() string { return a.Dimension }

// ArtworkInput is the form payload of a new listing.
type ArtworkInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Style       string `json:"style" validate:"max=60"`
	Category    string `json:"category" validate:"max=60"`
	Price       string `json:"price" validate:"required_if=Mode for_sale,max=60"`
	Dimension   string `json:"dimension" validate:"max=120"`
	Mode        string `json:"mode" validate:"omitempty,oneof=gallery for_sale"`
}

// ArtworkPatch is a partial update; nil fields are left unchanged.
type ArtworkPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Style       *string `json:"style" validate:"omitempty,max=60"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
	Price       *string `json:"price" validate:"omitempty,max=60"`
	Dimension   *string `json:"dimension" validate:"omitempty,max=120"`
	Mode        *string `json:"mode" validate:"omitempty,oneof=gallery for_sale"`
}

// ImageUpload is a raw image file received from a multipart form.
type ImageUpload struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// ArtworkQuery narrows the rows loaded from storage before the catalog engine runs.
type ArtworkQuery struct {
	Mode    string
	OwnerID string
	Search  string
	Limit   int
}

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *Artwork) error
	GetByID(ctx context.Context, id string) (*Artwork, error)
	List(ctx context.Context, q ArtworkQuery) ([]Artwork, error)
	Update(ctx context.Context, artwork *Artwork) error
	Delete(ctx context.Context, id string) error
}

// FileStorage stores processed uploads and serves them from a public URL.
type FileStorage interface {
	UploadBuffer(ctx context.Context, folder string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

// ImageProcessor normalises an uploaded image before storage.
type ImageProcessor interface {
	Process(r io.Reader, filename string) ([]byte, string, error)
}
