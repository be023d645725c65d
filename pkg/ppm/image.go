package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrOutOfBounds is returned when pixel coordinates fall outside the image
	ErrOutOfBounds = errors.New("pixel coordinates out of bounds")
	// ErrMalformed is returned when decoding input that is not a valid P3 image
	ErrMalformed = errors.New("malformed ppm data")
)

// Image is a row-major buffer of 8-bit colors; pixel (0,0) is the top-left corner
type Image struct {
	Width  int
	Height int
	Pixels []Color
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// FromRows builds an image from rows of colors, rows[y][x]. All rows must have the same length.
func FromRows(rows [][]Color) (*Image, error) {
	if len(rows) == 0 {
		return NewImage(0, 0), nil
	}
	width := len(rows[0])
	img := NewImage(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d pixels, expected %d: %w", y, len(row), width, ErrMalformed)
		}
		copy(img.Pixels[y*width:], row)
	}
	return img, nil
}

func (img *Image) index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0, fmt.Errorf("(%d, %d) in %dx%d image: %w", x, y, img.Width, img.Height, ErrOutOfBounds)
	}
	return y*img.Width + x, nil
}

// SetPixel writes the color at (x, y)
func (img *Image) SetPixel(x, y int, c Color) error {
	i, err := img.index(x, y)
	if err != nil {
		return err
	}
	img.Pixels[i] = c
	return nil
}

// GetPixel reads the color at (x, y)
func (img *Image) GetPixel(x, y int) (Color, error) {
	i, err := img.index(x, y)
	if err != nil {
		return Color{}, err
	}
	return img.Pixels[i], nil
}

// Equal reports whether two images have identical dimensions and pixels
func (img *Image) Equal(other *Image) bool {
	if img.Width != other.Width || img.Height != other.Height || len(img.Pixels) != len(other.Pixels) {
		return false
	}
	for i := range img.Pixels {
		if img.Pixels[i] != other.Pixels[i] {
			return false
		}
	}
	return true
}

// Encode writes the image as plain-text PPM (P3)
func (img *Image) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for _, c := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the image to path, creating or truncating the file
func (img *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := img.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Decode reads a plain-text PPM (P3). Comments starting with '#' are ignored
// and values are rescaled when the maximum is not 255.
func Decode(r io.Reader) (*Image, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 4 || tokens[0] != "P3" {
		return nil, fmt.Errorf("missing P3 header: %w", ErrMalformed)
	}

	header := make([]int, 3)
	for i := range header {
		header[i], err = strconv.Atoi(tokens[i+1])
		if err != nil || header[i] < 0 {
			return nil, fmt.Errorf("invalid header value %q: %w", tokens[i+1], ErrMalformed)
		}
	}
	width, height, maxValue := header[0], header[1], header[2]
	if maxValue == 0 || maxValue > 255 {
		return nil, fmt.Errorf("unsupported max value %d: %w", maxValue, ErrMalformed)
	}

	values := tokens[4:]
	if len(values) != width*height*3 {
		return nil, fmt.Errorf("expected %d channel values, found %d: %w", width*height*3, len(values), ErrMalformed)
	}

	img := NewImage(width, height)
	for i := range img.Pixels {
		var channels [3]uint8
		for c := range channels {
			v, err := strconv.Atoi(values[i*3+c])
			if err != nil || v < 0 || v > maxValue {
				return nil, fmt.Errorf("invalid channel value %q: %w", values[i*3+c], ErrMalformed)
			}
			channels[c] = uint8(v * 255 / maxValue)
		}
		img.Pixels[i] = Color{R: channels[0], G: channels[1], B: channels[2]}
	}
	return img, nil
}

func tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens, scanner.Err()
}

// Load reads a P3 image from path
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return img, nil
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image; points outside the bounds are transparent black
func (img *Image) At(x, y int) color.Color {
	c, err := img.GetPixel(x, y)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
