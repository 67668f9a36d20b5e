// Package rng derives the deterministic pseudo-random streams that drive map
// generation and gameplay. Every stream is a plain math/rand generator seeded
// by hashing the game seed with a purpose-specific salt, so the same seed
// always reproduces the same streams while different floors never share one.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
)

// Stream salts. Floor streams additionally mix in the floor index.
const (
	saltFloor   = 0x51ED270B
	saltSession = 0x7E15E5E1
)

// FloorStream returns the generation stream for one floor. Identical seed and
// floor index always produce an identical stream.
func FloorStream(seed int64, floor int) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(mix(seed, saltFloor+int64(floor)*2654435761)))
}

// SessionStream returns the gameplay stream for a whole session. Gameplay
// events consume it in action order, which keeps replays of the same action
// log on the same seed identical.
func SessionStream(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(mix(seed, saltSession)))
}

// NewSeed draws a fresh seed from the operating system entropy source, for
// sessions started without an explicit seed.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	seed := int64(binary.BigEndian.Uint64(buf[:]) &^ (1 << 63))
	return seed, nil
}

// CoinFlip returns true or false with equal probability.
func CoinFlip(r *mathrand.Rand) bool {
	return r.Intn(2) == 0
}

// Chance returns true with probability p (clamped to [0, 1]).
func Chance(r *mathrand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Between returns a uniform integer in [lo, hi]. The bounds may arrive in
// either order.
func Between(r *mathrand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// mix hashes seed and salt into a source seed using the splitmix64 finalizer,
// so that adjacent seeds or salts still yield unrelated streams.
func mix(seed, salt int64) int64 {
	z := uint64(seed) + uint64(salt)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
