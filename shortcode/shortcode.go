// Package shortcode generates the random identifiers assigned to links.
package shortcode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// charset defines the character set used for generating short codes.
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the fixed length of every generated short code. With a
// 62-character alphabet this yields a code space of 62^6 (~5.7e10).
const Length = 6

// reservedCodes are six-character words a fixed route would shadow. A link
// issued under one of these would never resolve, so allocation skips them.
var reservedCodes = map[string]struct{}{
	"health": {},
}

// Reserved reports whether code collides with a fixed route and must not
// be issued as a short code.
func Reserved(code string) bool {
	_, ok := reservedCodes[code]
	return ok
}

// Generator produces candidate short codes. Candidates are independent
// random draws; collision handling belongs to the caller.
type Generator interface {
	Generate() (string, error)
}

type randomGenerator struct{}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() Generator {
	return randomGenerator{}
}

// Generate creates a new short code string.
func (randomGenerator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(Length)

	charsetLength := big.NewInt(int64(len(charset)))

	for i := 0; i < Length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLength)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[randomIndex.Int64()])
	}
	return sb.String(), nil
}
