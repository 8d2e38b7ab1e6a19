// Package qrcode turns text into QR code images, either as raw PNG bytes or as
// a data URI that can be placed straight into an <img> tag.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode. The
// upstream library builds the symbol; this package picks the error
// correction level, draws the quiet zone with a configurable width and
// scales the result to the requested pixel size.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrform/pkg/qrcode"
//
//	// PNG bytes with the default options (256px, 2 module margin, medium ECL)
//	img, err := qrcode.Generate("https://example.com", qrcode.DefaultOptions())
//
//	// data:image/png;base64,... URI
//	uri, err := qrcode.GenerateBase64Image("https://example.com", qrcode.DefaultOptions())
//
//	// Encoder satisfies form.Encoder and can report prometheus metrics
//	enc := qrcode.NewEncoder(qrcode.WithMetrics(metrics))
//	uri, err := enc.Encode(ctx, "https://example.com")
//
// # Error Handling
//
//   - ErrEmptyContent: the content is empty or whitespace only.
//   - ErrFailedToGenerateQRCode: the upstream library rejected the content,
//     wrapping the library error on a single line.
//   - ErrInvalidLevel: ParseLevel got an unknown level name.
package qrcode
