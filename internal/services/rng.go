package services

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// RNG is the single randomness source behind every game outcome. Draws are
// independent and carry no persisted state.
type RNG interface {
	// Uniform returns a float64 in [0, 1).
	Uniform() float64
	// UniformInt returns an int in [0, n). n must be positive.
	UniformInt(n int) int
}

// cryptoRNG draws from crypto/rand. Money-bearing outcomes must not come
// from a seedable generator.
type cryptoRNG struct{}

func NewRNG() RNG {
	return cryptoRNG{}
}

func (cryptoRNG) Uniform() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible to return, so stop the process.
		panic("rng: entropy source unavailable: " + err.Error())
	}
	// Top 53 bits give a uniform dyadic rational in [0, 1).
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

func (cryptoRNG) UniformInt(n int) int {
	if n <= 0 {
		panic("rng: UniformInt requires n > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("rng: entropy source unavailable: " + err.Error())
	}
	return int(v.Int64())
}
