package base64

import (
	"fmt"
)

// EncodedLen returns the length of the base64 encoding of an input
// of n bytes: 4 characters for every started group of 3 bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes represented by n
// characters of base64-encoded input.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode returns the base64 encoding of src, including '=' padding.
// This function implements the standard encoding as defined in
// RFC 4648 Section 4.
//
// Encoding never fails; empty input produces the empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	dst := make([]byte, EncodedLen(len(src)))

	// Full groups: 3 bytes become four 6-bit values, high bits first.
	di, si := 0, 0
	for ; si+3 <= len(src); si += 3 {
		b0, b1, b2 := src[si], src[si+1], src[si+2]

		dst[di+0] = alphabet[b0>>2]
		dst[di+1] = alphabet[(b0&0x03)<<4|b1>>4]
		dst[di+2] = alphabet[(b1&0x0F)<<2|b2>>6]
		dst[di+3] = alphabet[b2&0x3F]
		di += 4
	}

	// A remainder of 1 or 2 bytes is packed as if the missing bytes
	// were zero, with the symbols that would carry only those zero
	// bits replaced by padding.
	switch len(src) - si {
	case 1:
		b0 := src[si]
		dst[di+0] = alphabet[b0>>2]
		dst[di+1] = alphabet[(b0&0x03)<<4]
		dst[di+2] = Padding
		dst[di+3] = Padding
	case 2:
		b0, b1 := src[si], src[si+1]
		dst[di+0] = alphabet[b0>>2]
		dst[di+1] = alphabet[(b0&0x03)<<4|b1>>4]
		dst[di+2] = alphabet[(b1&0x0F)<<2]
		dst[di+3] = Padding
	}

	return string(dst)
}

// Decode returns the bytes represented by the base64 string text,
// the exact inverse of Encode. Malformed input is rejected with
// ErrInvalidLength, ErrInvalidPadding or ErrInvalidCharacter, and
// no partial output is returned.
func Decode(text string) ([]byte, error) {
	if len(text)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrInvalidLength, len(text))
	}
	if len(text) == 0 {
		return []byte{}, nil
	}

	pad := 0
	for pad < len(text) && text[len(text)-1-pad] == Padding {
		pad++
	}
	if pad > 2 {
		return nil, fmt.Errorf("%w: %d trailing padding characters", ErrInvalidPadding, pad)
	}
	for i := 0; i < len(text)-pad; i++ {
		if text[i] == Padding {
			return nil, fmt.Errorf("%w: padding character at position %d before end of input", ErrInvalidPadding, i)
		}
	}

	dst := make([]byte, 0, DecodedLen(len(text)))

	for si := 0; si < len(text); si += 4 {
		// The final group carries 4-pad real symbols.
		n := 4
		if si+4 == len(text) {
			n -= pad
		}

		var group [4]byte
		for i := 0; i < n; i++ {
			v := decodeTable[text[si+i]]
			if v == invalidIndex {
				return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, text[si+i], si+i)
			}
			group[i] = v
		}

		// Reassemble the 24-bit group; 4 symbols carry 3 bytes,
		// 3 symbols carry 2, and 2 symbols carry 1.
		dst = append(dst, group[0]<<2|group[1]>>4)
		if n >= 3 {
			dst = append(dst, group[1]<<4|group[2]>>2)
		}
		if n == 4 {
			dst = append(dst, group[2]<<6|group[3])
		}
	}

	return dst, nil
}
