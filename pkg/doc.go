// Package b64 implements Base64 encoding and decoding: a lossless,
// printable ASCII representation of arbitrary binary data, and the
// way back.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
//  - RFC3548 https://datatracker.ietf.org/doc/html/rfc3548 (obsoleted by RFC 4648)
//
// The core codec lives in pkg/base64; pkg/textutil wraps it for
// UTF-8 text, and pkg/fileutil moves bytes between files and the
// codec.
package b64
