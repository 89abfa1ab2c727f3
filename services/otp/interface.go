// Package otp provides the one-time-code store capability used for phone
// verification. A record moves NONE -> ISSUED -> consumed/expired/exhausted;
// every terminal state deletes the record.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

const (
	// codeLength is the number of decimal digits in a code.
	codeLength = 6
	// TTL is how long an issued code stays valid.
	TTL = 10 * time.Minute
	// MaxAttempts is the number of verify attempts before a code is purged.
	MaxAttempts = 3
)

// Verification outcomes.
var (
	ErrNotFound        = errors.New("OTP expired or not sent")
	ErrExpired         = errors.New("OTP has expired")
	ErrTooManyAttempts = errors.New("too many failed attempts, please request a new OTP")
	ErrMismatch        = errors.New("invalid OTP")
)

// Store is the injectable OTP capability. Implementations must serialize
// verify calls per phone key so the attempt counter cannot be raced past
// its limit.
type Store interface {
	// Issue generates and stores a fresh code for the phone, overwriting
	// any prior unconsumed code.
	Issue(ctx context.Context, phone string) (string, error)
	// Verify checks a candidate code. On success the record is consumed.
	// On mismatch the record is retained with an incremented attempt count.
	Verify(ctx context.Context, phone, candidate string) error
	// Delete removes any record for the phone.
	Delete(ctx context.Context, phone string) error
}

// generateCode returns a uniformly random 6-digit code, leading zeros allowed.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}
