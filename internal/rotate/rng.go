package rotate

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the randomness behind the candidate shuffle so runs
// can be made reproducible in tests and via the -seed flag. The shuffle does
// not need cryptographic strength; the default source only uses crypto/rand
// to seed itself.
type RandomSource interface {
	IntN(n int) int // [0, n)
}

// DefaultRNG returns a PCG source seeded from the OS entropy pool.
func DefaultRNG() RandomSource {
	var buf [16]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// Fall back to the runtime-seeded global generator.
		return globalRNG{}
	}
	seed1 := binary.BigEndian.Uint64(buf[:8])
	seed2 := binary.BigEndian.Uint64(buf[8:])
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewSeededRNG returns a deterministic source for reproducible runs.
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

type globalRNG struct{}

func (globalRNG) IntN(n int) int { return rand.IntN(n) }
