// Package crypt provides the legacy symmetric-encryption and hashing helpers:
// base64 text encoding, SHA-1/SHA-256 digests, MD5 or PBKDF2 key derivation and a
// DES/Triple-DES block cipher engine with configurable mode and padding.
//
// The cipher is selected by key length: 8-byte keys use DES, 24-byte keys use Triple-DES.
// All functions are stateless and safe for concurrent use.
package crypt
