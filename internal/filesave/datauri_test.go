package filesave

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestDecodeDataURI_PrefixedAndRawMatch(t *testing.T) {
	prefixed, err := DecodeDataURI("data:image/png;base64,AAAA")
	require.NoError(t, err)

	raw, err := DecodeDataURI("AAAA")
	require.NoError(t, err)

	assert.Equal(t, raw, prefixed)
	assert.Equal(t, []byte{0, 0, 0}, raw)
}

func TestDecodeDataURI_StripsAnyMimePrefix(t *testing.T) {
	want := []byte("hello, world")
	payload := base64.StdEncoding.EncodeToString(want)

	inputs := []string{
		"data:image/png;base64," + payload,
		"data:image/svg+xml;base64," + payload,
		"data:application/octet-stream;base64," + payload,
		"data:text/plain;charset=utf-8;base64," + payload,
		"data:;base64," + payload,
		payload,
	}

	for _, in := range inputs {
		got, err := DecodeDataURI(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestDecodeDataURI_AcceptsMissingPadding(t *testing.T) {
	got, err := DecodeDataURI("data:image/png;base64,aGk")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), got)
}

func TestDecodeDataURI_AcceptsURLSafeAlphabet(t *testing.T) {
	got, err := DecodeDataURI("data:image/png;base64,-_-_")
	require.NoError(t, err)

	std, err := DecodeDataURI("+/+/")
	require.NoError(t, err)
	assert.Equal(t, std, got)
	assert.Equal(t, []byte{0xfb, 0xff, 0xbf}, got)

	got, err = DecodeDataURI("_w")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, got)
}

func TestDecodeDataURI_RejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"!!!not base64!!!",
		"data:image/png;base64,@@@@",
		"QUJD=QUJD",
	} {
		_, err := DecodeDataURI(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodeDataURI_EmptyPayload(t *testing.T) {
	got, err := DecodeDataURI("data:image/png;base64,")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSniffMimeType(t *testing.T) {
	png := append(append([]byte{}, pngHeader...), make([]byte, 32)...)
	assert.Equal(t, "image/png", sniffMimeType(png))
	assert.Equal(t, "", sniffMimeType([]byte("plain text content")))
	assert.Equal(t, "", sniffMimeType(nil))
}
