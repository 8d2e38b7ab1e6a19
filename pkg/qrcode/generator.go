package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidLevel is returned by ParseLevel for unknown level names.
	ErrInvalidLevel = errors.New("invalid error correction level")
)

const (
	defaultWidth  = 256
	defaultMargin = 2
)

// Options controls how a QR code is rendered.
type Options struct {
	// Width of the square image in pixels.
	Width int
	// Margin is the quiet zone around the symbol, in modules.
	Margin int
	// Level is the error correction level.
	Level Level
}

// DefaultOptions returns 256px wide images with a 2 module margin and medium
// error correction.
func DefaultOptions() Options {
	return Options{
		Width:  defaultWidth,
		Margin: defaultMargin,
		Level:  Medium,
	}
}

func (o Options) normalize() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Margin < 0 {
		o.Margin = defaultMargin
	}
	return o
}

// Generate creates a QR code image in PNG format with the given content.
// The image is Width pixels square unless the symbol plus margin needs more
// pixels than that, in which case one pixel per module is used.
func Generate(content string, opts Options) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	opts = opts.normalize()

	q, err := skipqrcode.New(content, opts.Level.recovery())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToGenerateQRCode, err)
	}
	// The upstream border is fixed at 4 modules; draw our own.
	q.DisableBorder = true

	var buf bytes.Buffer
	if err := png.Encode(&buf, rasterize(q.Bitmap(), opts.Margin, opts.Width)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToGenerateQRCode, err)
	}
	return buf.Bytes(), nil
}

// GenerateBase64Image creates a data URI (base64 encoded PNG) of a QR code
// with the given content.
//
// Use the returned string in a template like this:
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, opts Options) (string, error) {
	img, err := Generate(content, opts)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}

// rasterize scales the module bitmap into a size x size paletted image,
// centering it when size is not a multiple of the module count.
func rasterize(bitmap [][]bool, margin, size int) image.Image {
	modules := len(bitmap) + 2*margin
	if size < modules {
		size = modules
	}
	scale := size / modules
	offset := (size - modules*scale) / 2

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{color.White, color.Black})
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := offset + (x+margin)*scale
			y0 := offset + (y+margin)*scale
			for dy := range scale {
				for dx := range scale {
					img.SetColorIndex(x0+dx, y0+dy, 1)
				}
			}
		}
	}
	return img
}
