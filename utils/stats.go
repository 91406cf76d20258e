package utils

import "time"

// smoothing is the weight of the newest sample in the running averages
const smoothing = 0.1

// Stats tracks how a run evolves from generation to generation
type Stats struct {
	TotalGenerations     int
	GenerationsPerSecond float64
	AverageDensity       float64 // smoothed share of live cells, 0..1
	PeakPopulation       int
	Restarts             int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation of living cells out of cells total, computed
// in frame
func (s *Stats) Update(generation, living, cells int, frame time.Duration) {
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, living)

	if cells > 0 {
		s.AverageDensity = s.smooth(s.AverageDensity, float64(living)/float64(cells))
	}
	if frame > 0 {
		s.GenerationsPerSecond = s.smooth(s.GenerationsPerSecond, 1/frame.Seconds())
	}
}

// Restarted records that the grid was re-randomized
func (s *Stats) Restarted() {
	s.Restarts++
}

// first samples seed the average instead of being damped towards zero
func (s *Stats) smooth(avg, sample float64) float64 {
	if s.TotalGenerations <= 1 {
		return sample
	}
	return avg*(1-smoothing) + sample*smoothing
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
