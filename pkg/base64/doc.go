// Package base64 implements the standard "base64" base encoding
// specified by RFC 4648 Section 4, Base 64 Encoding. (This is the
// same as the base 64 encoding from RFC 3548 Section 3.)
//
// The character '=' is used for padding, so that encoded output is
// always a multiple of 4 characters in length. No line feeds are
// added, as per RFC 4648 Section 3.1, Line Feeds in Encoded Data.
//
// Both directions share one alphabet: the decoder's reverse lookup
// table is derived from the encoder's alphabet string at package
// initialization, so the two can never drift apart.
//
// https://datatracker.ietf.org/doc/html/rfc4648#section-4
package base64
