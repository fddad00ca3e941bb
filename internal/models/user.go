// Package models defines the data records persisted by weighttrack.
package models

// User is an account stored in the local database. The password is kept only
// as a salted digest; PasswordDigest and Salt are base64-encoded text and are
// rewritten exclusively by the schema migration (there is no password-change
// flow).
type User struct {
	// ID is assigned by the store on creation and immutable afterwards.
	ID int64

	// Username is unique, 3-30 characters, alphanumeric plus underscore.
	Username string

	// PasswordDigest is base64(SHA-256(salt || password)).
	PasswordDigest string

	// Salt is base64 of 16 random bytes, generated per user.
	Salt string
}
