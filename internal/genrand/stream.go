// Package genrand provides the seeded random stream and weighted sampling
// primitives every generator draws from. A generation run owns exactly one
// Stream and passes it explicitly; nothing in this module reads ambient
// process-global randomness.
package genrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/google/uuid"
)

// Stream is a deterministic source of uniform, normal and integer draws.
// Two streams built with the same seed produce identical call-for-call
// sequences. Stream is not safe for concurrent use; fork one child per
// worker instead.
type Stream struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Stream seeded with the given value.
func New(seed int64) *Stream {
	return &Stream{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewFromEntropy returns a Stream with a seed drawn from the OS entropy pool.
// The chosen seed is recorded so the run can be replayed.
func NewFromEntropy() *Stream {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible can be generated in that state.
		panic("genrand: entropy source unavailable: " + err.Error())
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
	return New(seed)
}

// Seed returns the seed this stream was constructed with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Uniform returns the next float64 in [0,1).
func (s *Stream) Uniform() float64 {
	return s.rng.Float64()
}

// Normal returns the next draw from Normal(mean, stddev).
func (s *Stream) Normal(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}

// IntBetween returns the next integer in [lo, hi], inclusive on both ends.
// Callers guarantee lo <= hi; ranges are validated at config load time.
func (s *Stream) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64Between returns the next float64 in [lo, hi).
func (s *Stream) Float64Between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Perm returns a deterministic pseudo-random permutation of [0,n).
func (s *Stream) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Read fills p with pseudo-random bytes, satisfying io.Reader so that UUIDs
// can be drawn from the same deterministic sequence.
func (s *Stream) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// NewID draws a UUID-shaped identifier from the stream.
func (s *Stream) NewID() string {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// rand.Rand.Read never returns an error.
		panic("genrand: uuid draw failed: " + err.Error())
	}
	return id.String()
}

// Fork derives an independently-seeded child stream from this stream's seed
// and a caller-chosen label (e.g. a customer index). Children with the same
// parent seed and label are identical across runs, and distinct labels give
// statistically independent sequences, which is what makes a parallel
// fan-out deterministic.
func (s *Stream) Fork(label uint64) *Stream {
	return New(int64(splitmix64(uint64(s.seed) ^ splitmix64(label))))
}

// splitmix64 is the finalizer from the SplitMix64 generator, used purely as
// a seed mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
