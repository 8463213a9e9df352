package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/h2non/bimg"

	"github.com/fleveque/media-gateway/internal/model"
)

// createTestPNG generates a small solid-color PNG image in memory.
func createTestPNG(width, height int, c color.Color) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestRender_AllSizes(t *testing.T) {
	processor := NewImageProcessor()
	testImage := createTestPNG(256, 256, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	for _, size := range model.AllSizes {
		t.Run(string(size), func(t *testing.T) {
			data, err := processor.Render(testImage, size, "")
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			imgSize, err := bimg.NewImage(data).Size()
			if err != nil {
				t.Fatalf("getting size: %v", err)
			}

			expectedPx := model.SizePixels[size]
			if imgSize.Width != expectedPx || imgSize.Height != expectedPx {
				t.Errorf("expected %dx%d, got %dx%d",
					expectedPx, expectedPx, imgSize.Width, imgSize.Height)
			}
			if bimg.DetermineImageType(data) != bimg.PNG {
				t.Error("expected PNG output")
			}
		})
	}
}

func TestRender_KeepsAspectRatio(t *testing.T) {
	processor := NewImageProcessor()

	// Logos are wide; only the width is pinned.
	testImage := createTestPNG(400, 200, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	data, err := processor.Render(testImage, model.SizeS, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	imgSize, err := bimg.NewImage(data).Size()
	if err != nil {
		t.Fatalf("getting size: %v", err)
	}
	if imgSize.Width != 128 || imgSize.Height != 64 {
		t.Errorf("expected 128x64, got %dx%d", imgSize.Width, imgSize.Height)
	}
}

func TestRender_WithBackground(t *testing.T) {
	processor := NewImageProcessor()
	testImage := createTestPNG(64, 64, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	data, err := processor.Render(testImage, model.SizeXS, "#ffffff")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty result")
	}
}

func TestRender_Errors(t *testing.T) {
	processor := NewImageProcessor()
	testImage := createTestPNG(32, 32, color.RGBA{A: 255})

	if _, err := processor.Render(testImage, model.LogoSize("huge"), ""); err == nil {
		t.Error("expected error for unknown size")
	}
	if _, err := processor.Render(testImage, model.SizeS, "nope"); err == nil {
		t.Error("expected error for invalid background")
	}
}

func TestApplyBackground(t *testing.T) {
	testImage := createTestPNG(64, 64, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	result, err := ApplyBackground(testImage, "ffffff")
	if err != nil {
		t.Fatalf("ApplyBackground failed: %v", err)
	}

	size, err := bimg.NewImage(result).Size()
	if err != nil {
		t.Fatalf("getting result size: %v", err)
	}
	if size.Width != 64 || size.Height != 64 {
		t.Errorf("expected 64x64, got %dx%d", size.Width, size.Height)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{"white", "ffffff", 255, 255, 255, false},
		{"black", "000000", 0, 0, 0, false},
		{"with hash", "#00ff00", 0, 255, 0, false},
		{"mixed case", "aaBBcc", 170, 187, 204, false},
		{"too short", "fff", 0, 0, 0, true},
		{"invalid chars", "gggggg", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHexColor(%q) error = %v, wantErr = %v", tt.hex, err, tt.wantErr)
				return
			}
			if !tt.wantErr && (r != tt.wantR || g != tt.wantG || b != tt.wantB) {
				t.Errorf("ParseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)",
					tt.hex, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}
