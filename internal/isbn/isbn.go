// Package isbn builds ISBN-13 numbers in the Bookland "978" range.
package isbn

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	Prefix     = "978"
	BodyLength = 9
	Length     = 13
)

var (
	ErrNonDigit = errors.New("non-digit character")
	ErrLength   = errors.New("wrong number of digits")
)

// Checksum returns the EAN-13 weighted sum of digits: weight 1 at even
// positions, 3 at odd ones, counted from the left starting at zero.
func Checksum(digits string) (int, error) {
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w %q at position %d", ErrNonDigit, c, i)
		}
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += weight * int(c-'0')
	}
	return sum, nil
}

// CheckDigit computes the thirteenth digit for the 12 leading digits.
func CheckDigit(leading string) (int, error) {
	if len(leading) != Length-1 {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrLength, Length-1, len(leading))
	}
	sum, err := Checksum(leading)
	if err != nil {
		return 0, err
	}
	return (10 - sum%10) % 10, nil
}

// Compose prepends Prefix to a 9-digit body and appends the check digit.
func Compose(body string) (string, error) {
	if len(body) != BodyLength {
		return "", fmt.Errorf("body: %w: want %d, got %d", ErrLength, BodyLength, len(body))
	}
	leading := Prefix + body
	check, err := CheckDigit(leading)
	if err != nil {
		return "", fmt.Errorf("body: %w", err)
	}
	return leading + string(rune('0'+check)), nil
}

// Generate draws a uniformly random body from rng and returns the full ISBN-13.
func Generate(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(BodyLength)
	for i := 0; i < BodyLength; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	// The body is always nine digits, so Compose cannot fail here.
	s, _ := Compose(b.String())
	return s
}
