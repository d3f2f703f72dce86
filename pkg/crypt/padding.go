package crypt

import (
	"crypto/rand"
	"fmt"
)

// padLength returns how many bytes the scheme appends to n bytes of input.
func padLength(padding Padding, n, blockSize int) int {
	remainder := n % blockSize

	switch padding {
	case PaddingNone:
		return 0
	case PaddingZeros:
		if remainder == 0 {
			return 0
		}

		return blockSize - remainder
	default:
		return blockSize - remainder
	}
}

// pad returns a copy of data extended to a multiple of blockSize.
func pad(data []byte, padding Padding, blockSize int) ([]byte, error) {
	if padding == PaddingNone && len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte block size without padding",
			ErrInvalidDataLength, len(data), blockSize)
	}

	n := padLength(padding, len(data), blockSize)

	padded := make([]byte, len(data)+n)
	copy(padded, data)

	if n == 0 {
		return padded, nil
	}

	tail := padded[len(data):]

	switch padding {
	case PaddingPKCS7:
		for i := range tail {
			tail[i] = byte(n)
		}
	case PaddingANSIX923:
		tail[n-1] = byte(n)
	case PaddingISO10126:
		if _, err := rand.Read(tail[:n-1]); err != nil {
			return nil, fmt.Errorf("generating padding: %w", err)
		}

		tail[n-1] = byte(n)
	case PaddingZeros, PaddingNone:
	}

	return padded, nil
}

// unpad strips the padding scheme from decrypted data.
func unpad(data []byte, padding Padding, blockSize int) ([]byte, error) {
	switch padding {
	case PaddingNone:
		return data, nil
	case PaddingZeros:
		end := len(data)
		for end > 0 && len(data)-end < blockSize-1 && data[end-1] == 0 {
			end--
		}

		return data[:end], nil
	}

	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes of padded data", ErrPaddingValidation, length)
	}

	n := int(data[length-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid %s padding size %d", ErrPaddingValidation, padding, n)
	}

	switch padding {
	case PaddingPKCS7:
		for i := length - n; i < length; i++ {
			if data[i] != byte(n) {
				return nil, fmt.Errorf("%w: malformed %s padding", ErrPaddingValidation, padding)
			}
		}
	case PaddingANSIX923:
		for i := length - n; i < length-1; i++ {
			if data[i] != 0 {
				return nil, fmt.Errorf("%w: malformed %s padding", ErrPaddingValidation, padding)
			}
		}
	case PaddingISO10126, PaddingNone, PaddingZeros:
	}

	return data[:length-n], nil
}
