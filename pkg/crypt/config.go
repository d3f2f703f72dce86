package crypt

import (
	"fmt"
	"strings"
)

// Mode is the block cipher mode of operation.
type Mode byte

const (
	// ModeECB encrypts every block independently. Kept for compatibility only.
	ModeECB Mode = iota
	// ModeCBC chains each block with the previous ciphertext block.
	ModeCBC
	// ModeCFB is cipher feedback with a full-block feedback size.
	ModeCFB
	// ModeOFB is output feedback with a full-block feedback size.
	ModeOFB
	// ModeCTS is CBC with ciphertext stealing (CS3 layout); it never pads.
	ModeCTS
)

//nolint:gochecknoglobals
var modeNames = map[Mode]string{
	ModeECB: "ECB",
	ModeCBC: "CBC",
	ModeCFB: "CFB",
	ModeOFB: "OFB",
	ModeCTS: "CTS",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", m)
}

// RequiresIV reports whether the mode chains blocks through an initialization vector.
func (m Mode) RequiresIV() bool {
	return m != ModeECB
}

// ParseMode maps a case-insensitive name such as "cbc" to a Mode.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if strings.EqualFold(n, name) {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("%w: mode %q", ErrUnsupportedConfiguration, name)
}

// Padding is the scheme used to fill the final block.
type Padding byte

const (
	// PaddingNone requires block-aligned input.
	PaddingNone Padding = iota
	// PaddingZeros fills a partial final block with zero bytes.
	PaddingZeros
	// PaddingPKCS7 appends N bytes of value N.
	PaddingPKCS7
	// PaddingANSIX923 appends N-1 zero bytes followed by N.
	PaddingANSIX923
	// PaddingISO10126 appends N-1 random bytes followed by N.
	PaddingISO10126
)

//nolint:gochecknoglobals
var paddingNames = map[Padding]string{
	PaddingNone:     "None",
	PaddingZeros:    "Zeros",
	PaddingPKCS7:    "PKCS7",
	PaddingANSIX923: "ANSIX923",
	PaddingISO10126: "ISO10126",
}

func (p Padding) String() string {
	if name, ok := paddingNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Padding(%d)", p)
}

// ParsePadding maps a case-insensitive name such as "pkcs7" or "ANSI_X923" to a Padding.
func ParsePadding(name string) (Padding, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)

	for padding, n := range paddingNames {
		if strings.EqualFold(n, normalized) {
			return padding, nil
		}
	}

	return 0, fmt.Errorf("%w: padding %q", ErrUnsupportedConfiguration, name)
}

// Config is the mode/padding pair applied by Encrypt and Decrypt.
type Config struct {
	Mode    Mode
	Padding Padding
}

// DefaultConfig returns CBC with PKCS7 padding.
func DefaultConfig() Config {
	return Config{Mode: ModeCBC, Padding: PaddingPKCS7}
}

// Validate rejects unknown modes and paddings and combinations that cannot be processed.
func (c Config) Validate() error {
	if _, ok := modeNames[c.Mode]; !ok {
		return fmt.Errorf("%w: unknown mode %d", ErrUnsupportedConfiguration, c.Mode)
	}

	if _, ok := paddingNames[c.Padding]; !ok {
		return fmt.Errorf("%w: unknown padding %d", ErrUnsupportedConfiguration, c.Padding)
	}

	if c.Mode == ModeCTS && c.Padding != PaddingNone {
		return fmt.Errorf("%w: %s mode does not use padding, got %s", ErrUnsupportedConfiguration, c.Mode, c.Padding)
	}

	return nil
}

func (c Config) String() string {
	return c.Mode.String() + "/" + c.Padding.String()
}
