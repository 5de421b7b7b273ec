// platform/clock.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

// TickClock tracks the time of the current tick relative to the start of
// the event loop along with the time elapsed since the previous tick. It
// keeps its own origin so that the native library's global timer is never
// reset.
type TickClock struct {
	running  bool
	origin   float64
	current  float64
	previous float64
	delta    float64
}

func (c *TickClock) Start(now float64) {
	*c = TickClock{running: true, origin: now}
}

// Advance updates the clock for a new tick at native time now. It starts
// the clock if Start hasn't been called.
func (c *TickClock) Advance(now float64) {
	if !c.running {
		c.Start(now)
	}
	c.current = now - c.origin
	c.delta = max(c.current-c.previous, 0)
	c.previous = c.current
}

// Time returns the time of the current tick in seconds since Start.
func (c *TickClock) Time() float64 { return c.current }

// Delta returns the seconds elapsed between the previous tick and the
// current one.
func (c *TickClock) Delta() float64 { return c.delta }

func (c *TickClock) Running() bool { return c.running }
