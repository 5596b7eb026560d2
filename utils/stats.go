package utils

import "time"

// Stats summarizes how a session has performed so far.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	Population           int
	StartTime            time.Time
}

// NewStats starts the runtime clock now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one finished generation into the running figures. A zero
// duration keeps the previous rate; the population average is an
// exponential moving average weighted 0.1 toward the newest sample.
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations, s.Population = generation, population
	if duration > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(duration)
	}

	sample := float64(population)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += (sample - s.AveragePopulation) * 0.1
}

// Restart clears the running averages after the grid has been reseeded.
func (s *Stats) Restart(population int) {
	s.TotalGenerations = 0
	s.Population = population
	s.GenerationsPerSecond = 0
	s.AveragePopulation = float64(population)
}

// Runtime returns the time elapsed since the stats were created.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
