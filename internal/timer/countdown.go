package timer

import (
	"sync"
	"time"
)

// DefaultRestDuration is the rest countdown default.
const DefaultRestDuration = 180 * time.Second

// RestPresets are the selectable rest lengths.
var RestPresets = []time.Duration{
	60 * time.Second,
	180 * time.Second,
	300 * time.Second,
	420 * time.Second,
}

// Countdown is a restartable rest timer. Start replaces any running
// countdown, ticking once per second with the remaining time and
// firing onDone when it reaches zero. All callbacks run on the timer
// goroutine.
type Countdown struct {
	mu       sync.Mutex
	duration time.Duration
	interval time.Duration
	onTick   func(remaining time.Duration)
	onDone   func()
	stop     chan struct{}
	done     chan struct{}
}

func NewCountdown(onTick func(remaining time.Duration), onDone func()) *Countdown {
	return &Countdown{
		duration: DefaultRestDuration,
		interval: time.Second,
		onTick:   onTick,
		onDone:   onDone,
	}
}

// SetDuration changes the countdown length for the next Start. It is
// ignored while a countdown is running.
func (c *Countdown) SetDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	if d <= 0 {
		d = DefaultRestDuration
	}
	c.duration = d
}

func (c *Countdown) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Start begins a fresh countdown, cancelling the previous one first.
func (c *Countdown) Start() {
	c.Stop()

	c.mu.Lock()
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	stop, done := c.stop, c.done
	duration, interval := c.duration, c.interval
	c.mu.Unlock()

	go c.run(duration, interval, stop, done)
}

// Stop cancels the running countdown and waits for its goroutine to
// exit. Stopping an idle countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (c *Countdown) run(duration, interval time.Duration, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	remaining := duration
	if c.onTick != nil {
		c.onTick(remaining)
	}
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining -= interval
			if remaining > 0 {
				if c.onTick != nil {
					c.onTick(remaining)
				}
				continue
			}
			if c.onTick != nil {
				c.onTick(0)
			}
			if c.onDone != nil {
				c.onDone()
			}
			c.finish(stop)
			return
		}
	}
}

// finish clears the stop/done pair after a natural expiry, so that a
// later Stop does not block on an already-exited goroutine.
func (c *Countdown) finish(stop chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop == stop {
		c.stop, c.done = nil, nil
	}
}
