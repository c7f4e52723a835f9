package base64

import "errors"

// Decode rejects malformed input with exactly one of these errors,
// wrapped with positional detail. Match with errors.Is.
var (
	// ErrInvalidLength reports input whose length is not a
	// multiple of 4.
	ErrInvalidLength = errors.New("base64: invalid length")

	// ErrInvalidPadding reports a misplaced or miscounted
	// padding character.
	ErrInvalidPadding = errors.New("base64: invalid padding")

	// ErrInvalidCharacter reports a character outside the
	// 64-symbol alphabet and '='.
	ErrInvalidCharacter = errors.New("base64: invalid character")
)
