package i18n

import "errors"

// Loading errors are joined with the underlying cause; compare with errors.Is.
var (
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrInvalidStructure   = errors.New("invalid translation structure")
	ErrNoTranslationFiles = errors.New("no translation files found")
)
