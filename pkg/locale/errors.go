package locale

import "errors"

var (
	// ErrInvalidTag is returned when a locale identifier is not a valid BCP 47 tag.
	ErrInvalidTag = errors.New("invalid locale tag")

	// ErrInvalidSymbols is returned when a symbol table is incomplete or inconsistent.
	ErrInvalidSymbols = errors.New("invalid locale symbols")

	// ErrUnsupportedFormat is returned for symbol files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported symbols file format")

	// ErrFailedToReadFile is returned when a symbols file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read symbols file")

	// ErrFailedToParseFile is returned when a symbols file cannot be decoded.
	ErrFailedToParseFile = errors.New("failed to parse symbols file")

	// ErrLoadingCancelled is returned when the context is done before loading finishes.
	ErrLoadingCancelled = errors.New("loading symbols cancelled")
)
