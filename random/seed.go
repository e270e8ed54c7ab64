// Package random provides cryptographic seed helpers for pseudo-random
// number generators.
//
// Systems that replay or audit randomness (shuffles, dice) keep the
// deterministic *rand.Rand interface but want unpredictable seeds; this
// package sources those seeds from crypto/rand.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a *rand.Rand seeded from crypto/rand. The error reports
// a failed entropy read.
func NewRand() (*rand.Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}

	return rand.New(rand.NewSource(seed)), nil
}
