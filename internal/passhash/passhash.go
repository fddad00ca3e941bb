// Package passhash derives and verifies salted password digests.
//
// The stored form is base64(SHA-256(salt || password)) next to base64(salt),
// with a fresh 16-byte random salt per credential. Verification never returns
// an error: malformed stored data is treated as a mismatch so callers can fail
// closed.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// SaltLength is the number of random bytes in a freshly generated salt.
const SaltLength = 16

// GenerateSalt produces SaltLength cryptographically random bytes. Salts are
// not checked for uniqueness against existing users; a collision is harmless.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Hash computes the digest of salt followed by the UTF-8 bytes of password
// and returns it base64-encoded.
func Hash(password string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// EncodeSalt returns the printable form of a salt as stored in the database.
func EncodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

// Verify recomputes the digest for password under the stored salt and compares
// it to the stored digest in constant time over the encoded forms. It returns
// false on any mismatch, including an undecodable stored salt.
func Verify(password, saltText, digestText string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltText)
	if err != nil {
		return false
	}
	candidate := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digestText)) == 1
}
