package textutil

import (
	"testing"

	"github.com/picatz/b64/pkg/base64"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeString(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
	}{
		{
			Name:  "empty",
			Input: "",
		},
		{
			Name:  "plaintext",
			Input: "hello world",
		},
		{
			Name:  "multi-byte runes",
			Input: "some string with ünicødë",
		},
		{
			Name:  "han text",
			Input: "你好，这是一个测试",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			decoded, err := DecodeString(EncodeString(test.Input))
			require.NoError(t, err)
			require.Equal(t, test.Input, decoded)
		})
	}
}

func TestDecodeStringInvalidUTF8(t *testing.T) {
	// 0xFF can never appear in UTF-8 text.
	text := base64.Encode([]byte{0xFF, 0xFE, 0xFD})

	decoded, err := DecodeString(text)
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Empty(t, decoded)
}

func TestDecodeStringPassesThroughCodecErrors(t *testing.T) {
	_, err := DecodeString("not base64!")
	require.ErrorIs(t, err, base64.ErrInvalidLength)
	require.NotErrorIs(t, err, ErrInvalidUTF8)

	_, err = DecodeString("TQ==TWFu")
	require.ErrorIs(t, err, base64.ErrInvalidPadding)
}
