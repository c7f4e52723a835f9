package base64

// The 64 data symbols in index order, RFC 4648 Section 4. The decode
// table below is derived from this string, never authored separately.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding is the character appended to encoded output to bring its
// length up to a multiple of 4, signaling how many bytes of the
// final group are real.
const Padding = '='

const invalidIndex = 0xFF

// decodeTable maps a character back to its 6-bit value, or to
// invalidIndex for anything outside the alphabet, Padding included.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidIndex
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}
