package crypt

import (
	"crypto/cipher"
)

// cryptBlocks runs the mode over block-aligned data. The IV is ignored by ECB.
func cryptBlocks(block cipher.Block, mode Mode, iv, src []byte, encrypt bool) []byte {
	dst := make([]byte, len(src))

	switch mode {
	case ModeECB:
		if encrypt {
			encryptECB(block, dst, src)
		} else {
			decryptECB(block, dst, src)
		}
	case ModeCBC:
		if encrypt {
			cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, src)
		} else {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src)
		}
	case ModeCFB:
		if encrypt {
			cipher.NewCFBEncrypter(block, iv).XORKeyStream(dst, src) //nolint:staticcheck // legacy format
		} else {
			cipher.NewCFBDecrypter(block, iv).XORKeyStream(dst, src) //nolint:staticcheck // legacy format
		}
	case ModeOFB:
		cipher.NewOFB(block, iv).XORKeyStream(dst, src) //nolint:staticcheck // legacy format
	case ModeCTS:
		if encrypt {
			ctsEncrypt(block, iv, dst, src)
		} else {
			ctsDecrypt(block, iv, dst, src)
		}
	}

	return dst
}

func encryptECB(block cipher.Block, dst, src []byte) {
	size := block.BlockSize()

	for i := 0; i < len(src); i += size {
		block.Encrypt(dst[i:i+size], src[i:i+size])
	}
}

func decryptECB(block cipher.Block, dst, src []byte) {
	size := block.BlockSize()

	for i := 0; i < len(src); i += size {
		block.Decrypt(dst[i:i+size], src[i:i+size])
	}
}

// ctsEncrypt implements CBC ciphertext stealing in the CS3 layout:
// the final two ciphertext blocks are always swapped and the last one is truncated
// to the length of the final plaintext segment. src must be at least one block long.
func ctsEncrypt(block cipher.Block, iv, dst, src []byte) {
	size := block.BlockSize()

	if len(src) == size {
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, src)

		return
	}

	tail := len(src) % size
	if tail == 0 {
		tail = size
	}

	head := len(src) - tail

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst[:head], src[:head])

	stolen := make([]byte, size)
	copy(stolen, dst[head-size:head])

	last := make([]byte, size)
	copy(last, src[head:])

	for i := range last {
		last[i] ^= stolen[i]
	}

	block.Encrypt(last, last)

	copy(dst[head-size:head], last)
	copy(dst[head:], stolen[:tail])
}

// ctsDecrypt reverses ctsEncrypt.
func ctsDecrypt(block cipher.Block, iv, dst, src []byte) {
	size := block.BlockSize()

	if len(src) == size {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src)

		return
	}

	tail := len(src) % size
	if tail == 0 {
		tail = size
	}

	head := len(src) - tail

	decrypted := make([]byte, size)
	block.Decrypt(decrypted, src[head-size:head])

	// The bytes cut from the penultimate ciphertext block are the tail of decrypted.
	previous := make([]byte, size)
	copy(previous, src[head:])
	copy(previous[tail:], decrypted[tail:])

	for i := range tail {
		dst[head+i] = decrypted[i] ^ previous[i]
	}

	chain := make([]byte, head)
	copy(chain, src[:head-size])
	copy(chain[head-size:], previous)

	cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst[:head], chain)
}
