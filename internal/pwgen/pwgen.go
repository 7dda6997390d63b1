// Package pwgen generates random credential material for new entries.
package pwgen

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?"
)

// Options selects the character classes to draw from. Exclude removes
// individual characters after the classes are assembled, for sites with
// restricted alphabets.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
	Exclude string
}

// DefaultOptions enables every character class at a 20-character length.
func DefaultOptions() Options {
	return Options{Length: 20, Upper: true, Lower: true, Digits: true, Symbols: true}
}

// Generate returns a random password drawn uniformly from the selected
// character set.
func Generate(opts Options) (string, error) {
	if opts.Length <= 0 {
		return "", errors.New("password length must be positive")
	}

	var charset string
	if opts.Upper {
		charset += upperChars
	}
	if opts.Lower {
		charset += lowerChars
	}
	if opts.Digits {
		charset += digitChars
	}
	if opts.Symbols {
		charset += symbolChars
	}
	for _, ch := range opts.Exclude {
		charset = strings.ReplaceAll(charset, string(ch), "")
	}
	if len(charset) == 0 {
		return "", errors.New("no characters available for generation")
	}

	password := make([]byte, opts.Length)
	for i := range password {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[index.Int64()]
	}
	return string(password), nil
}
