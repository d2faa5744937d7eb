package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// otpSpan covers the 6-digit range 100000-999999
var otpSpan = big.NewInt(900000)

// OTPGenerator draws uniform 6-digit confirmation codes from a random source.
// The source is injected so tests can make code generation deterministic;
// production uses crypto/rand.
type OTPGenerator struct {
	source io.Reader
}

// NewOTPGenerator creates an OTPGenerator. A nil source defaults to
// crypto/rand.Reader.
func NewOTPGenerator(source io.Reader) *OTPGenerator {
	if source == nil {
		source = rand.Reader
	}
	return &OTPGenerator{source: source}
}

// Generate returns a confirmation code uniform over [100000, 999999]
func (g *OTPGenerator) Generate() (string, error) {
	n, err := rand.Int(g.source, otpSpan)
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
