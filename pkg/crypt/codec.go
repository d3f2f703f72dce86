package crypt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode renders data as standard, padded base64.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses standard, padded base64.
// Invalid characters, bad padding and non-zero trailing bits are rejected, and so are
// line breaks, which encoding/base64 would otherwise skip.
func Decode(text string) ([]byte, error) {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: line break at offset %d", ErrMalformedEncoding, i)
	}

	data, err := base64.StdEncoding.Strict().DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}

	return data, nil
}
