package utils

import (
	"math/rand"
	"time"
)

// ClockSource draws from a generator seeded with the wall clock every time
// Reseed is called.
type ClockSource struct {
	r   *rand.Rand
	now func() time.Time
}

// NewClockSource returns a ClockSource already seeded from the current time.
func NewClockSource() *ClockSource {
	s := &ClockSource{now: time.Now}
	s.Reseed()
	return s
}

// Reseed re-initializes the generator from the current time.
func (s *ClockSource) Reseed() {
	s.r = rand.New(rand.NewSource(s.now().UnixNano()))
}

// Intn returns a pseudo-random number in [0, n).
func (s *ClockSource) Intn(n int) int {
	return s.r.Intn(n)
}

// SeededSource replays the same sequence after every Reseed, which makes
// grid population reproducible.
type SeededSource struct {
	seed int64
	r    *rand.Rand
}

// NewSeededSource returns a SeededSource for the given seed.
func NewSeededSource(seed int64) *SeededSource {
	s := &SeededSource{seed: seed}
	s.Reseed()
	return s
}

// Reseed rewinds the generator to the start of its sequence.
func (s *SeededSource) Reseed() {
	s.r = rand.New(rand.NewSource(s.seed))
}

// Intn returns a pseudo-random number in [0, n).
func (s *SeededSource) Intn(n int) int {
	return s.r.Intn(n)
}
