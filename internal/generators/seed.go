package generators

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewRand returns an RNG for seed, or for a fresh seed drawn from crypto/rand
// when seed is nil. The effective seed is returned alongside.
func NewRand(seed *int64) (*rand.Rand, int64, error) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		var err error
		s, err = generateSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(s)), s, nil
}

func generateSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
