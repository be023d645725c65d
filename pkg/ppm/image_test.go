package ppm

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func TestImage_EncodeFormat(t *testing.T) {
	img := NewImage(2, 1)
	if err := img.SetPixel(0, 0, Color{255, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := img.SetPixel(1, 0, Color{0, 255, 0}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	expected := "P3\n2 1\n255\n255 0 0\n0 255 0\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestImage_EncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewImage(0, 0).Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "P3\n0 0\n255\n" {
		t.Errorf("Unexpected empty encoding %q", buf.String())
	}
}

func TestImage_Bounds(t *testing.T) {
	img := NewImage(3, 2)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 2, 1, true},
		{"x past width", 3, 0, false},
		{"y past height", 0, 2, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := img.SetPixel(tt.x, tt.y, White)
			if tt.ok && err != nil {
				t.Errorf("SetPixel unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("SetPixel expected ErrOutOfBounds, got %v", err)
			}

			c, err := img.GetPixel(tt.x, tt.y)
			if tt.ok && (err != nil || c != White) {
				t.Errorf("GetPixel got %v, %v", c, err)
			}
			if !tt.ok && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("GetPixel expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestImage_RowMajor(t *testing.T) {
	img := NewImage(2, 2)
	_ = img.SetPixel(1, 0, Red)
	_ = img.SetPixel(0, 1, Blue)
	if img.Pixels[1] != Red || img.Pixels[2] != Blue {
		t.Errorf("Pixels are not stored row-major: %v", img.Pixels)
	}
}

func TestFromRows(t *testing.T) {
	img, err := FromRows([][]Color{
		{Red, Green},
		{Blue, White},
	})
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", img.Width, img.Height)
	}
	if c, _ := img.GetPixel(0, 1); c != Blue {
		t.Errorf("Expected blue at (0,1), got %v", c)
	}

	if _, err := FromRows([][]Color{{Red}, {Red, Green}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for ragged rows, got %v", err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	img := NewImage(4, 3)
	for i := range img.Pixels {
		img.Pixels[i] = Color{uint8(i * 20), uint8(255 - i), uint8(i)}
	}

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !img.Equal(loaded) {
		t.Error("Loaded image differs from saved image")
	}
}

func TestDecode_CommentsAndMaxValue(t *testing.T) {
	input := "P3\n# generated\n2 1 # size\n15\n15 0 0\n0 15 5\n"
	img, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if img.Pixels[0] != Red {
		t.Errorf("Expected rescaled red, got %v", img.Pixels[0])
	}
	if img.Pixels[1] != (Color{0, 255, 85}) {
		t.Errorf("Expected (0, 255, 85), got %v", img.Pixels[1])
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := map[string]string{
		"wrong magic":     "P6\n1 1\n255\n0 0 0\n",
		"missing pixels":  "P3\n2 1\n255\n0 0 0\n",
		"too many pixels": "P3\n1 1\n255\n0 0 0 1\n",
		"bad number":      "P3\n1 1\n255\n0 x 0\n",
		"value over max":  "P3\n1 1\n255\n0 256 0\n",
		"zero max":        "P3\n1 1\n0\n0 0 0\n",
		"empty":           "",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(input)); !errors.Is(err, ErrMalformed) {
				t.Errorf("Expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	img := NewImage(2, 2)
	_ = img.SetPixel(1, 1, Color{10, 20, 30})

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.At(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("Expected opaque (10,20,30), got %v", got)
	}
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("Expected transparent outside bounds, got %v", got)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("PNG round trip gave (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}
