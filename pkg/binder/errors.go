package binder

import "errors"

// Binding errors. Errors from Form and Signals wrap one of these.
var (
	// ErrBinderNotApplicable tells the caller to try the next binder.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
)
