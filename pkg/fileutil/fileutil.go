// Package fileutil moves byte sequences between files and the base64
// codec. The codec itself only sees in-memory bytes; this package
// owns the paths, the file handles, and the I/O error reporting.
//
// I/O failures are always typed (*ErrFileRead, *ErrFileWrite) and
// never conflated with the codec's decode errors, so a caller can
// tell an unreadable file from a readable file that is not valid
// base64.
package fileutil

import (
	"os"

	"github.com/picatz/b64/pkg/base64"
)

// Read returns the full contents of the file at path, failing with
// *ErrFileRead.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileReadError(path, err)
	}
	return data, nil
}

// Write creates or overwrites the file at path with data, failing
// with *ErrFileWrite.
func Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewFileWriteError(path, err)
	}
	return nil
}

// EncodeFile reads the bytes of src, base64 encodes them, and writes
// the encoded text to dst.
func EncodeFile(src, dst string) error {
	data, err := Read(src)
	if err != nil {
		return err
	}
	return Write(dst, []byte(base64.Encode(data)))
}

// DecodeFile reads base64 text from src and writes the decoded bytes
// to dst. Decode errors are returned as-is, and nothing is written
// to dst when decoding fails.
func DecodeFile(src, dst string) error {
	text, err := Read(src)
	if err != nil {
		return err
	}

	decoded, err := base64.Decode(string(text))
	if err != nil {
		return err
	}

	return Write(dst, decoded)
}
