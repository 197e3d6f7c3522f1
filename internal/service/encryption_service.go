package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/pkg/apperror"
)

// AESCodecPrefix marks values produced by AESCodec.
const AESCodecPrefix = "AESGCM-"

// AESCodec implements ports.ScalarCodec with AES-256-GCM over the decimal
// form of the score. It is the keyed alternative to TaggedCodec; the
// transform engine and registry work with either.
type AESCodec struct {
	aead cipher.AEAD
}

// NewAESCodec creates a new AES-256-GCM codec.
// hexKey must be a 64-character hex string (32 bytes decoded).
func NewAESCodec(hexKey string) (*AESCodec, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESCodec{aead: aead}, nil
}

// Encode seals the decimal form of value.
// Output: "AESGCM-" + hex(nonce || ciphertext).
func (c *AESCodec) Encode(value float64) (domain.EncryptedValue, error) {
	if !isFinite(value) {
		return "", apperror.ErrNonFiniteValue()
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.InternalError(fmt.Errorf("generating nonce: %w", err))
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(formatScalar(value)), nil)
	return domain.EncryptedValue(AESCodecPrefix + hex.EncodeToString(sealed)), nil
}

// Decode opens a sealed value. Untagged input falls back to a numeric parse.
func (c *AESCodec) Decode(value domain.EncryptedValue) (float64, error) {
	s := string(value)
	if !strings.HasPrefix(s, AESCodecPrefix) {
		return parseUntagged(s)
	}

	sealed, err := hex.DecodeString(s[len(AESCodecPrefix):])
	if err != nil {
		return 0, apperror.ErrDecode(fmt.Errorf("decoding ciphertext: %w", err))
	}

	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return 0, apperror.ErrDecode(fmt.Errorf("ciphertext too short"))
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return 0, apperror.ErrDecode(fmt.Errorf("decrypting: %w", err))
	}

	return parseScalar(string(plaintext))
}
