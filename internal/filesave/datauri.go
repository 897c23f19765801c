package filesave

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/h2non/filetype"
)

// dataURIPrefix matches "data:<mime>[;param]*;base64," at the start of a string.
var dataURIPrefix = regexp.MustCompile(`^data:[^,;]*(?:;[^,;]*)*;base64,`)

// stripDataURIPrefix returns the base64 payload of a data URI. Strings without
// a data URI prefix are returned unchanged and treated as raw base64.
func stripDataURIPrefix(data string) string {
	if loc := dataURIPrefix.FindStringIndex(data); loc != nil {
		return data[loc[1]:]
	}
	return data
}

// DecodeDataURI decodes a base64 data URI, with or without its MIME prefix,
// into raw bytes. Unpadded and URL-safe base64 are accepted.
func DecodeDataURI(data string) ([]byte, error) {
	payload := stripDataURIPrefix(data)

	padded, raw := base64.StdEncoding, base64.RawStdEncoding
	if strings.ContainsAny(payload, "-_") {
		padded, raw = base64.URLEncoding, base64.RawURLEncoding
	}

	decoded, err := padded.DecodeString(payload)
	if err == nil {
		return decoded, nil
	}
	if strings.Contains(payload, "=") || len(payload)%4 == 0 {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}

	// Browsers and Node both tolerate missing padding
	decoded, rawErr := raw.DecodeString(payload)
	if rawErr != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", rawErr)
	}
	return decoded, nil
}

// sniffMimeType detects the content type from magic bytes.
// Returns an empty string when the type is unknown.
func sniffMimeType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
