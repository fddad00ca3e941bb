// Package validate holds the input rules applied before any store mutation.
// All functions are pure predicates.
package validate

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// MaxNoteLength is the maximum accepted note length, in characters.
	MaxNoteLength = 1000
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// Username reports whether s is 3-30 characters of letters, digits or
// underscore.
func Username(s string) bool {
	return usernamePattern.MatchString(s)
}

// Password reports whether s meets the strength rules: at least
// MinPasswordLength characters, with at least one digit, one uppercase
// letter, one lowercase letter and one character that is neither letter
// nor digit.
func Password(s string) bool {
	runes := []rune(s)
	if len(runes) < MinPasswordLength {
		return false
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	return hasDigit && hasUpper && hasLower && hasSymbol
}

// Weight reports whether v lies strictly between 0 and 1000.
func Weight(v float64) bool {
	return v > 0 && v < 1000
}

// Note reports whether s fits the note length limit. Length is counted in
// characters, matching the length() CHECK on the notes column.
func Note(s string) bool {
	return utf8.RuneCountInString(s) <= MaxNoteLength
}
