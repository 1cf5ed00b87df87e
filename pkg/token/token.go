package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Length is the character length of a generated token (32 random bytes,
// hex encoded).
const Length = 64

// Generate returns an opaque session token with 256 bits of entropy.
// Collisions are not handled beyond the entropy itself; the sessions table
// primary key would reject the write in the astronomically unlikely case.
func Generate() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
