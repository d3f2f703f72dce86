package crypt

import (
	"crypto/sha1" //nolint:gosec // SHA-1 digests are part of the stored format
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Algorithm selects the digest function.
type Algorithm byte

const (
	// SHA1 produces a 160-bit digest.
	SHA1 Algorithm = iota
	// SHA256 produces a 256-bit digest.
	SHA256
)

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return fmt.Sprintf("Algorithm(%d)", a)
	}
}

// ParseAlgorithm maps a name such as "sha1" or "SHA-256" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	default:
		return 0, fmt.Errorf("%w: digest algorithm %q", ErrUnsupportedConfiguration, name)
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil //nolint:gosec
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: digest algorithm %d", ErrUnsupportedConfiguration, a)
	}
}

// TextEncoding selects how text is turned into bytes before hashing.
type TextEncoding byte

const (
	// UTF8 hashes the UTF-8 bytes of the text.
	UTF8 TextEncoding = iota
	// Windows1252 hashes the Windows-1252 bytes of the text.
	// Characters outside the code page are replaced by '?'.
	Windows1252
)

// String returns the IANA-style name of the encoding.
func (e TextEncoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Windows1252:
		return "windows-1252"
	default:
		return fmt.Sprintf("TextEncoding(%d)", e)
	}
}

// ParseTextEncoding maps a name such as "utf-8" or "windows-1252" to a TextEncoding.
func ParseTextEncoding(name string) (TextEncoding, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "utf8", "":
		return UTF8, nil
	case "windows1252", "cp1252":
		return Windows1252, nil
	default:
		return 0, fmt.Errorf("%w: text encoding %q", ErrUnsupportedConfiguration, name)
	}
}

// Bytes converts text into its byte representation under the encoding.
func (e TextEncoding) Bytes(text string) ([]byte, error) {
	switch e {
	case UTF8:
		return []byte(text), nil
	case Windows1252:
		// Unmappable runes become '?', not the 0x1A that encoding.ReplaceUnsupported writes.
		data := make([]byte, 0, len(text))

		for _, r := range text {
			b, ok := charmap.Windows1252.EncodeRune(r)
			if !ok {
				b = '?'
			}

			data = append(data, b)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w: text encoding %d", ErrUnsupportedConfiguration, e)
	}
}

// Digest hashes input and returns the base64 form of the raw digest.
// A nil input is rejected; an empty, non-nil input is hashed normally.
func Digest(alg Algorithm, input []byte) (string, error) {
	if input == nil {
		return "", fmt.Errorf("%w: digest input", ErrNullOrEmptyInput)
	}

	h, err := alg.newHash()
	if err != nil {
		return "", err
	}

	h.Write(input)

	return Encode(h.Sum(nil)), nil
}

// DigestText hashes the bytes of text under enc.
func DigestText(alg Algorithm, text string, enc TextEncoding) (string, error) {
	data, err := enc.Bytes(text)
	if err != nil {
		return "", err
	}

	if data == nil {
		data = []byte{}
	}

	return Digest(alg, data)
}

// UnwrapDigest strips the base64 layer of a digest produced by Digest.
// The result is the raw digest; the hash itself cannot be inverted.
func UnwrapDigest(text string) ([]byte, error) {
	return Decode(text)
}

// UnwrapDigestASCII strips the base64 layer and reads the bytes as ASCII text,
// replacing bytes outside the ASCII range with '?'.
func UnwrapDigestASCII(text string) (string, error) {
	data, err := Decode(text)
	if err != nil {
		return "", err
	}

	const maxASCII = 0x7f

	var sb strings.Builder

	sb.Grow(len(data))

	for _, b := range data {
		if b > maxASCII {
			b = '?'
		}

		sb.WriteByte(b)
	}

	return sb.String(), nil
}
