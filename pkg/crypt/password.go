package crypt

import (
	"fmt"
)

// PasswordEncrypt encrypts plaintext with DES, using the password bytes both as key and IV
// (CBC, PKCS7), and returns base64 text. The IV is fixed, so equal plaintexts produce
// equal ciphertexts.
//
// If plaintext or password is empty, plaintext is returned unchanged.
func PasswordEncrypt(plaintext, password string) (string, error) {
	if plaintext == "" || password == "" {
		return plaintext, nil
	}

	key := []byte(password)

	ciphertext, err := Encrypt([]byte(plaintext), key, key, passwordConfig())
	if err != nil {
		return "", fmt.Errorf("password encrypt: %w", err)
	}

	return Encode(ciphertext), nil
}

// PasswordDecrypt reverses PasswordEncrypt.
//
// If text or password is empty, text is returned unchanged.
func PasswordDecrypt(text, password string) (string, error) {
	if text == "" || password == "" {
		return text, nil
	}

	ciphertext, err := Decode(text)
	if err != nil {
		return "", fmt.Errorf("password decrypt: %w", err)
	}

	key := []byte(password)

	plaintext, err := Decrypt(ciphertext, key, key, passwordConfig())
	if err != nil {
		return "", fmt.Errorf("password decrypt: %w", err)
	}

	return string(plaintext), nil
}

func passwordConfig() Config {
	return Config{Mode: ModeCBC, Padding: PaddingPKCS7}
}

// EncryptText encrypts plaintext with Triple-DES (ECB, PKCS7) under a key derived by
// DeriveKey and returns base64 text.
func EncryptText(plaintext, passphrase string, useHashing bool) (string, error) {
	key, err := DeriveKey([]byte(passphrase), useHashing, TripleDESKeySize)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	ciphertext, err := Encrypt([]byte(plaintext), key, nil, textConfig())
	if err != nil {
		return "", err
	}

	return Encode(ciphertext), nil
}

// DecryptText reverses EncryptText.
func DecryptText(text, passphrase string, useHashing bool) (string, error) {
	key, err := DeriveKey([]byte(passphrase), useHashing, TripleDESKeySize)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	ciphertext, err := Decode(text)
	if err != nil {
		return "", err
	}

	plaintext, err := Decrypt(ciphertext, key, nil, textConfig())
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func textConfig() Config {
	return Config{Mode: ModeECB, Padding: PaddingPKCS7}
}
