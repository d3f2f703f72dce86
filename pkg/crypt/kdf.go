package crypt

import (
	"bytes"
	"crypto/md5" //nolint:gosec // MD5 key stretching is the historical key format
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey turns a passphrase into key bytes of targetLength (8 or 24).
//
// With useHashing the MD5 digest of the passphrase is used: its first 8 bytes for DES,
// or the two-key Triple-DES layout K1|K2|K1 for Triple-DES. Without hashing the
// passphrase must already be exactly targetLength bytes long.
func DeriveKey(passphrase []byte, useHashing bool, targetLength int) ([]byte, error) {
	if targetLength != SingleDESKeySize && targetLength != TripleDESKeySize {
		return nil, fmt.Errorf("%w: target length %d, want %d or %d",
			ErrInvalidKeyLength, targetLength, SingleDESKeySize, TripleDESKeySize)
	}

	if !useHashing {
		if len(passphrase) != targetLength {
			return nil, fmt.Errorf("%w: passphrase is %d bytes, want %d",
				ErrInvalidKeyLength, len(passphrase), targetLength)
		}

		return bytes.Clone(passphrase), nil
	}

	sum := md5.Sum(passphrase) //nolint:gosec

	return fitKey(sum[:], targetLength), nil
}

// fitKey shapes a 16-byte digest into a DES or Triple-DES key.
func fitKey(digest []byte, targetLength int) []byte {
	key := make([]byte, 0, targetLength)

	if targetLength == SingleDESKeySize {
		return append(key, digest[:SingleDESKeySize]...)
	}

	key = append(key, digest[:2*SingleDESKeySize]...)

	return append(key, digest[:SingleDESKeySize]...)
}

// DeriveKeyPBKDF2 derives key bytes of targetLength (8 or 24) with PBKDF2-HMAC-SHA256.
// It is the recommended replacement for the MD5 path of DeriveKey.
func DeriveKeyPBKDF2(passphrase, salt []byte, iterations, targetLength int) ([]byte, error) {
	if targetLength != SingleDESKeySize && targetLength != TripleDESKeySize {
		return nil, fmt.Errorf("%w: target length %d, want %d or %d",
			ErrInvalidKeyLength, targetLength, SingleDESKeySize, TripleDESKeySize)
	}

	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: PBKDF2 requires a salt", ErrUnsupportedConfiguration)
	}

	if iterations < 1 {
		return nil, fmt.Errorf("%w: PBKDF2 iterations must be positive, got %d", ErrUnsupportedConfiguration, iterations)
	}

	return pbkdf2.Key(passphrase, salt, iterations, targetLength, sha256.New), nil
}
