package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kbukum/reddish/errors"
)

// Cipher encrypts and decrypts strings. Ciphertexts are base64 text with the
// nonce prepended to the sealed bytes.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Algorithm names a supported AEAD construction.
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256-GCM (default, widely supported).
	AlgorithmAESGCM Algorithm = "aes-256-gcm"

	// AlgorithmChaCha20 is ChaCha20-Poly1305 (fast on CPUs without AES-NI).
	AlgorithmChaCha20 Algorithm = "chacha20-poly1305"
)

// Option configures NewCipher.
type Option func(*cipherOptions)

type cipherOptions struct {
	algorithm Algorithm
}

// WithAlgorithm selects the encryption algorithm (default: AES-256-GCM).
func WithAlgorithm(alg Algorithm) Option {
	return func(o *cipherOptions) { o.algorithm = alg }
}

type aeadCipher struct {
	aead cipher.AEAD
}

// NewCipher creates a Cipher keyed by the SHA-256 digest of key.
func NewCipher(key string, opts ...Option) (Cipher, error) {
	if key == "" {
		return nil, errors.MissingField("key")
	}
	o := &cipherOptions{algorithm: AlgorithmAESGCM}
	for _, opt := range opts {
		opt(o)
	}

	keyBytes := sha256.Sum256([]byte(key))

	var (
		aead cipher.AEAD
		err  error
	)
	switch o.algorithm {
	case AlgorithmChaCha20:
		aead, err = chacha20poly1305.New(keyBytes[:])
	case AlgorithmAESGCM:
		aead, err = newGCM(keyBytes[:])
	default:
		return nil, errors.InvalidInput("algorithm", fmt.Sprintf("unsupported algorithm %q", o.algorithm))
	}
	if err != nil {
		return nil, errors.Internal(err).WithDetail("algorithm", string(o.algorithm))
	}
	return &aeadCipher{aead: aead}, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *aeadCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Internal(fmt.Errorf("generate nonce: %w", err))
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (c *aeadCipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.InvalidInput("ciphertext", "not valid base64").WithCause(err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return "", errors.InvalidInput("ciphertext", "ciphertext too short")
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.InvalidInput("ciphertext", "authentication failed").WithCause(err)
	}
	return string(plaintext), nil
}
