package form

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationInProgress is returned when Generate is called while an
	// earlier call is still waiting for the encoder.
	ErrGenerationInProgress = errors.New("generation already in progress")
	// ErrRenderFailed wraps errors returned by the Renderer.
	ErrRenderFailed = errors.New("failed to render form state")
	// ErrNoTransition is returned by Transition for events the current phase
	// does not accept.
	ErrNoTransition = errors.New("no transition available")
)

// Message keys used with the Localizer.
const (
	MessageEmptyText = "qr.errors.empty_text"
	MessageUnknown   = "qr.errors.unknown"
)

// Default (English) texts for the message keys.
const (
	DefaultEmptyTextMessage = "Enter text to generate the QR"
	DefaultUnknownMessage   = "Unknown error"
)

// ValidationError reports that the trimmed input was empty.
// The encoder is never called when this error is produced.
type ValidationError struct {
	Message string
}

// Error returns the localized message.
func (e *ValidationError) Error() string {
	return e.Message
}

// EncodeError reports a failure of the encoder. Message is the encoder's own
// message or the localized unknown error text when the encoder gave none.
type EncodeError struct {
	Message string
	Err     error
}

// Error returns the user-visible message.
func (e *EncodeError) Error() string {
	return e.Message
}

// Unwrap returns the encoder error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsEncodeError reports whether err is or wraps an *EncodeError.
func IsEncodeError(err error) bool {
	var e *EncodeError
	return errors.As(err, &e)
}

func noTransition(p Phase, ev Event) error {
	return fmt.Errorf("%w: from %s on %s", ErrNoTransition, p.Name(), ev.Name())
}
