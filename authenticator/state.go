package authenticator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// stateBytes is the entropy of a generated state value.
const stateBytes = 16

// GenerateState returns a random hex-encoded value for the OAuth state parameter.
func GenerateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
