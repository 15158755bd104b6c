package auth

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashCode hashes a plaintext access code with the configured cost.
func HashCode(code string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareCode verifies a code against its hashed value.
func CompareCode(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// EffectiveCost is the bcrypt cost used for a configured value. Costs below
// bcrypt.MinCost fall back to bcrypt.DefaultCost.
func EffectiveCost(cost int) int {
	if cost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// CodeVerifier checks access codes in time that does not depend on whether
// the login exists: unknown logins are compared against a throwaway hash of
// the same cost.
type CodeVerifier struct {
	dummy string
}

// NewCodeVerifier prepares the throwaway hash.
func NewCodeVerifier(cost int) (*CodeVerifier, error) {
	cost = EffectiveCost(cost)
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	dummy, err := HashCode(hex.EncodeToString(secret), cost)
	if err != nil {
		return nil, err
	}
	return &CodeVerifier{dummy: dummy}, nil
}

// Verify reports whether code matches hashed. An empty hash is compared
// against the throwaway hash and always fails.
func (v *CodeVerifier) Verify(hashed, code string) bool {
	if hashed == "" {
		_ = CompareCode(v.dummy, code)
		return false
	}
	return CompareCode(hashed, code) == nil
}
