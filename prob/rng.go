package prob

import "hash/fnv"

// DefaultSeed is the seed conventionally used when the caller has no
// preference.
const DefaultSeed int64 = 0

// SplitMix64 constants (Vigna 2014).
const (
	golden = 0x9e3779b97f4a7c15
	mixA   = 0xbf58476d1ce4e5b9
	mixB   = 0x94d049bb133111eb
)

// Stream is a counter-based SplitMix64 generator. Output k is a pure
// function of (seed, k), so two streams built from the same seed agree
// bit for bit.
//
// Stream satisfies math/rand/v2.Source and is handed to gonum's distuv as
// Src. It is not safe for concurrent use; every site gets its own Stream.
type Stream struct {
	state uint64
}

// NewStream returns a stream keyed by seed.
func NewStream(seed int64) *Stream { return &Stream{state: uint64(seed)} }

// Seed resets the stream to the given key.
func (s *Stream) Seed(seed uint64) { s.state = seed }

// Uint64 returns the next 64 pseudorandom bits.
// Complexity: O(1).
func (s *Stream) Uint64() uint64 {
	s.state += golden

	return mix64(s.state)
}

// Float64 returns a uniform value in [0, 1) with 53 random bits.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * mixA
	x = (x ^ (x >> 27)) * mixB

	return x ^ (x >> 31)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed.
// Small input changes avalanche into unrelated outputs, so sub-streams for
// neighbouring identifiers are decorrelated.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + golden)
	x += golden

	return int64(mix64(x))
}

// siteKey hashes a site name with FNV-1a so that a site's sub-stream depends
// on its name only, not on its position in the program.
func siteKey(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))

	return h.Sum64()
}

// DrawSeed returns the seed used for draw i of a batch keyed by seed.
// The latent values of that draw equal GetSample(DrawSeed(seed, i)).
func DrawSeed(seed int64, i int) int64 { return deriveSeed(seed, uint64(i)) }
