package utils

import (
	"bytes"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"artmarket-backend/pkg/logger"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// MaxImageWidth is the widest stored image; larger uploads are downscaled.
const MaxImageWidth = 2000

// WebPProcessor resizes uploads and re-encodes them as WebP (JPEG fallback).
type WebPProcessor struct {
	Quality float32
}

func NewWebPProcessor() *WebPProcessor {
	return &WebPProcessor{Quality: 85}
}

// Process decodes r, downsizes it to MaxImageWidth and encodes it.
// It returns the encoded bytes and their content type.
func (p *WebPProcessor) Process(r io.Reader, filename string) ([]byte, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("file", filename).Str("format", format).Msg("Processing image")

	if img.Bounds().Dx() > MaxImageWidth {
		img = imaging.Resize(img, MaxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	err = webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  p.Quality,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("WebP encoding failed, falling back to JPEG")
		buf.Reset()
		if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: int(p.Quality)}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}

	return buf.Bytes(), "image/webp", nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// IsImage verifies simple content type
func IsImage(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}

// IsAllowedImage checks both the declared content type and the file extension.
func IsAllowedImage(contentType, filename string) bool {
	return IsImage(contentType) && imageExtensions[strings.ToLower(filepath.Ext(filename))]
}
