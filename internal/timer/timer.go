// Package timer measures wall-clock durations for training drivers.
package timer

import (
	"time"

	"github.com/FlavioCFOliveira/zeuron/internal/logger"
)

// Timer is a start/stop stopwatch. The zero value is ready to use and logs
// nothing.
type Timer struct {
	Log logger.Logger

	start   time.Time
	elapsed time.Duration
	running bool

	now func() time.Time
}

// New creates a Timer that reports misuse to log.
func New(log logger.Logger) *Timer {
	return &Timer{Log: log}
}

func (t *Timer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Start begins a measurement, discarding any running one.
func (t *Timer) Start() {
	t.start = t.clock()
	t.running = true
}

// Stop ends the running measurement.
func (t *Timer) Stop() {
	if !t.running {
		logger.Printf(t.Log, logger.Info, "Timer is not running. Call Start first.")
		return
	}
	t.elapsed = t.clock().Sub(t.start)
	t.running = false
}

// Reset clears the timer.
func (t *Timer) Reset() {
	t.start = time.Time{}
	t.elapsed = 0
	t.running = false
}

// Running reports whether a measurement is in progress.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the seconds between the last Start and Stop. It returns 0
// while the timer is still running.
func (t *Timer) Elapsed() float64 {
	if t.running {
		logger.Printf(t.Log, logger.Info, "Timer is still running. Stop it to get elapsed time.")
		return 0
	}
	return t.elapsed.Seconds()
}
