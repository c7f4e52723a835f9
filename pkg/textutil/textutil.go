// Package textutil provides string conveniences over the base64
// codec: text goes in as its raw UTF-8 bytes, and decoded bytes are
// only handed back as a string once they have been checked to be
// valid UTF-8.
//
// The codec itself never judges text validity; that happens here.
package textutil

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/picatz/b64/pkg/base64"
)

// ErrInvalidUTF8 reports decoded bytes that are not valid UTF-8 text.
// It is distinct from every decode error of the base64 package, so
// callers can tell "not valid base64" from "valid base64, not text".
var ErrInvalidUTF8 = errors.New("textutil: decoded bytes are not valid UTF-8")

// EncodeString returns the base64 encoding of the raw bytes of s.
func EncodeString(s string) string {
	return base64.Encode([]byte(s))
}

// DecodeString decodes text and interprets the resulting bytes as
// UTF-8. Codec failures pass through unchanged; bytes that decode
// fine but are not valid UTF-8 fail with ErrInvalidUTF8.
func DecodeString(text string) (string, error) {
	decoded, err := base64.Decode(text)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}

	if !utf8.Valid(decoded) {
		return "", ErrInvalidUTF8
	}

	return string(decoded), nil
}
