package crypt

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key does not match the size required by the cipher.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidIVLength is returned when a chaining mode receives an IV that is not one block long.
	ErrInvalidIVLength = errors.New("invalid initialization vector length")
	// ErrUnsupportedConfiguration is returned for unknown modes, paddings or invalid combinations.
	ErrUnsupportedConfiguration = errors.New("unsupported cipher configuration")
	// ErrMalformedEncoding is returned when base64 input cannot be decoded.
	ErrMalformedEncoding = errors.New("malformed encoding")
	// ErrPaddingValidation is returned when decrypted data does not end in valid padding.
	ErrPaddingValidation = errors.New("padding validation failed")
	// ErrNullOrEmptyInput is returned when a required input is missing.
	ErrNullOrEmptyInput = errors.New("null or empty input")
	// ErrInvalidDataLength is returned when input length is not valid for the configuration.
	ErrInvalidDataLength = errors.New("invalid data length")
)
