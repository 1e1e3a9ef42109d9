package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12

	// TokenSuffixLength is the length of the random suffix appended to a
	// client ID when minting an access token.
	TokenSuffixLength = 16
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateClientToken mints an opaque bearer token for a client in the form
// "clientID_randomsuffix". The clientID prefix keeps tokens human-attributable
// in admin tooling; the suffix carries the entropy.
func GenerateClientToken(clientID string) (string, error) {
	suffix, err := Generate(TokenSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", clientID, suffix), nil
}
