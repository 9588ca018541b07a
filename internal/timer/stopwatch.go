package timer

import (
	"sync"
	"time"
)

// Stopwatch measures elapsed workout time. It accumulates across
// Start/Stop cycles until Reset.
type Stopwatch struct {
	mu          sync.Mutex
	now         func() time.Time
	startedAt   time.Time
	accumulated time.Duration
	running     bool
}

func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(time.Now)
}

func NewStopwatchWithClock(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Start begins or resumes timing. Starting a running stopwatch is a
// no-op.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.startedAt = s.now()
	s.running = true
}

// Stop pauses timing, keeping the accumulated duration.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.accumulated += s.now().Sub(s.startedAt)
	s.running = false
}

func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accumulated = 0
	s.running = false
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the total measured time, including the in-flight
// segment when running.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.accumulated
	if s.running {
		elapsed += s.now().Sub(s.startedAt)
	}
	return elapsed
}
