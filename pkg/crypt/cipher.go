package crypt

import (
	"crypto/cipher"
	"crypto/des" //nolint:gosec // DES and Triple-DES are the supported legacy ciphers
	"fmt"
)

// BlockSize is the block size shared by DES and Triple-DES.
const BlockSize = des.BlockSize

// Cipher identifies the block cipher chosen for a key.
type Cipher byte

const (
	// SingleDES is DES with an 8-byte key.
	SingleDES Cipher = iota + 1
	// TripleDES is DES-EDE3 with a 24-byte key.
	TripleDES
)

const (
	// SingleDESKeySize is the key size selecting SingleDES.
	SingleDESKeySize = 8
	// TripleDESKeySize is the key size selecting TripleDES.
	TripleDESKeySize = 24
)

// CipherForKey selects the cipher implied by the key length.
func CipherForKey(key []byte) (Cipher, error) {
	switch len(key) {
	case SingleDESKeySize:
		return SingleDES, nil
	case TripleDESKeySize:
		return TripleDES, nil
	default:
		return 0, fmt.Errorf("%w: got %d bytes, want %d or %d",
			ErrInvalidKeyLength, len(key), SingleDESKeySize, TripleDESKeySize)
	}
}

func (c Cipher) String() string {
	switch c {
	case SingleDES:
		return "DES"
	case TripleDES:
		return "3DES"
	default:
		return fmt.Sprintf("Cipher(%d)", c)
	}
}

// KeySize returns the key length the cipher requires.
func (c Cipher) KeySize() int {
	switch c {
	case SingleDES:
		return SingleDESKeySize
	case TripleDES:
		return TripleDESKeySize
	default:
		return 0
	}
}

func (c Cipher) newBlock(key []byte) (cipher.Block, error) {
	var (
		block cipher.Block
		err   error
	)

	switch c {
	case SingleDES:
		block, err = des.NewCipher(key) //nolint:gosec
	case TripleDES:
		block, err = des.NewTripleDESCipher(key) //nolint:gosec
	default:
		return nil, fmt.Errorf("%w: cipher %d", ErrUnsupportedConfiguration, c)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: creating %s cipher: %w", ErrInvalidKeyLength, c, err)
	}

	return block, nil
}
