package service

import (
	"fmt"
	"strings"

	"github.com/h2non/bimg"

	"github.com/fleveque/media-gateway/internal/model"
)

// ImageProcessor renders downloaded logos at a requested width. It uses bimg
// (Go bindings for libvips), so libvips must be installed on the host.
type ImageProcessor struct{}

// NewImageProcessor creates a new ImageProcessor.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Render resizes imageData (PNG, JPEG, SVG or WebP) to the width of size,
// keeping the aspect ratio, and encodes it as PNG. A non-empty bgHex flattens
// the alpha channel onto that color.
func (p *ImageProcessor) Render(imageData []byte, size model.LogoSize, bgHex string) ([]byte, error) {
	pixels, ok := model.SizePixels[size]
	if !ok {
		return nil, fmt.Errorf("unknown logo size %q", size)
	}

	resized, err := bimg.NewImage(imageData).Process(bimg.Options{
		Width:          pixels,
		Type:           bimg.PNG,
		Enlarge:        true,
		Interpretation: bimg.InterpretationSRGB,
	})
	if err != nil {
		return nil, fmt.Errorf("resizing to %dpx: %w", pixels, err)
	}

	if bgHex == "" {
		return resized, nil
	}
	return ApplyBackground(resized, bgHex)
}

// ApplyBackground flattens the alpha channel of a PNG onto a solid color.
func ApplyBackground(imageData []byte, hexColor string) ([]byte, error) {
	r, g, b, err := ParseHexColor(hexColor)
	if err != nil {
		return nil, err
	}

	img := bimg.NewImage(imageData)
	return img.Process(bimg.Options{
		Background:     bimg.Color{R: r, G: g, B: b},
		Flatten:        true,
		Type:           bimg.PNG,
		Interpretation: bimg.InterpretationSRGB,
	})
}

// ParseHexColor converts a hex color string (with or without #) to RGB values.
func ParseHexColor(hex string) (uint8, uint8, uint8, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q (expected 6 characters)", hex)
	}

	var r, g, b uint8
	_, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing hex color %q: %w", hex, err)
	}

	return r, g, b, nil
}
