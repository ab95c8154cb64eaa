package pinelight

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing metrics. Only populated when the scene
// is in debug mode.
type tickStats struct {
	start         time.Time
	advanceTime   time.Duration
	particleCount int
}

// debugLog prints tick stats to stderr.
func (s *Scene) debugLog(stats tickStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[pinelight] state: %s | particles: %d | advance: %v | tick: %v\n",
		s.machine.State(), stats.particleCount, stats.advanceTime, time.Since(stats.start))
}
