package snake

import "time"

// Scheduler converts elapsed wall time into fixed simulation steps.
type Scheduler struct {
	interval   time.Duration
	acc        time.Duration
	maxCatchUp int
}

// NewScheduler creates a scheduler with the given step interval.
// maxCatchUp caps how many steps a single Advance may report.
func NewScheduler(interval time.Duration, maxCatchUp int) *Scheduler {
	return &Scheduler{interval: interval, maxCatchUp: max(maxCatchUp, 1)}
}

// Interval returns the current step interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Reset sets a new interval and drops accumulated time.
func (s *Scheduler) Reset(interval time.Duration) {
	s.interval = interval
	s.acc = 0
}

// Advance adds elapsed time and returns how many steps are due.
// Steps beyond maxCatchUp are dropped, keeping the fractional remainder.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if s.interval <= 0 || elapsed <= 0 {
		return 0
	}
	s.acc += elapsed
	n := int(s.acc / s.interval)
	s.acc %= s.interval
	return min(n, s.maxCatchUp)
}
