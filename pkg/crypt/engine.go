package crypt

import (
	"bytes"
	"crypto/cipher"
	"fmt"
)

// engine is a fully validated cipher setup for a single call.
type engine struct {
	cipher Cipher
	block  cipher.Block
	cfg    Config
	iv     []byte
}

// newEngine validates the configuration, key and IV before any data is touched.
func newEngine(key, iv []byte, cfg Config) (*engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := CipherForKey(key)
	if err != nil {
		return nil, err
	}

	block, err := c.newBlock(key)
	if err != nil {
		return nil, err
	}

	eng := &engine{
		cipher: c,
		block:  block,
		cfg:    cfg,
	}

	if cfg.Mode.RequiresIV() {
		if len(iv) != BlockSize {
			return nil, fmt.Errorf("%w: got %d bytes, %s mode requires %d",
				ErrInvalidIVLength, len(iv), cfg.Mode, BlockSize)
		}

		eng.iv = bytes.Clone(iv)
	}

	return eng, nil
}

// Encrypt encrypts plaintext with DES (8-byte key) or Triple-DES (24-byte key)
// under cfg. iv is required for every mode except ECB, where it is ignored.
func Encrypt(plaintext, key, iv []byte, cfg Config) ([]byte, error) {
	if plaintext == nil {
		return nil, fmt.Errorf("%w: plaintext", ErrNullOrEmptyInput)
	}

	eng, err := newEngine(key, iv, cfg)
	if err != nil {
		return nil, err
	}

	return eng.encrypt(plaintext)
}

// Decrypt reverses Encrypt with the same key, IV and configuration.
func Decrypt(ciphertext, key, iv []byte, cfg Config) ([]byte, error) {
	if ciphertext == nil {
		return nil, fmt.Errorf("%w: ciphertext", ErrNullOrEmptyInput)
	}

	eng, err := newEngine(key, iv, cfg)
	if err != nil {
		return nil, err
	}

	return eng.decrypt(ciphertext)
}

func (e *engine) encrypt(plaintext []byte) ([]byte, error) {
	if e.cfg.Mode == ModeCTS {
		if len(plaintext) < BlockSize {
			return nil, fmt.Errorf("%w: %s mode needs at least %d bytes, got %d",
				ErrInvalidDataLength, e.cfg.Mode, BlockSize, len(plaintext))
		}

		return cryptBlocks(e.block, e.cfg.Mode, e.iv, plaintext, true), nil
	}

	padded, err := pad(plaintext, e.cfg.Padding, BlockSize)
	if err != nil {
		return nil, err
	}

	return cryptBlocks(e.block, e.cfg.Mode, e.iv, padded, true), nil
}

func (e *engine) decrypt(ciphertext []byte) ([]byte, error) {
	if e.cfg.Mode == ModeCTS {
		if len(ciphertext) < BlockSize {
			return nil, fmt.Errorf("%w: %s mode needs at least %d bytes, got %d",
				ErrInvalidDataLength, e.cfg.Mode, BlockSize, len(ciphertext))
		}

		return cryptBlocks(e.block, e.cfg.Mode, e.iv, ciphertext, false), nil
	}

	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes is not a multiple of the %d-byte block size",
			ErrInvalidDataLength, len(ciphertext), BlockSize)
	}

	plaintext := cryptBlocks(e.block, e.cfg.Mode, e.iv, ciphertext, false)

	return unpad(plaintext, e.cfg.Padding, BlockSize)
}
