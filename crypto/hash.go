package crypto

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// MD5Hash returns the hex-encoded MD5 digest of s.
func MD5Hash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256Hash returns the hex-encoded SHA-256 digest of s.
func SHA256Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA3Hash returns the hex-encoded SHA3-256 digest of s.
func SHA3Hash(s string) string {
	sum := sha3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// BLAKE2bHash returns the hex-encoded BLAKE2b-256 digest of s.
func BLAKE2bHash(s string) string {
	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
