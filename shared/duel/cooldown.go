package duel

import "time"

// Cooldown counts down in fixed steps against a deadline. Only one wake is
// pending at a time and it is re-armed only by Set.
type Cooldown struct {
	remaining time.Duration
	next      time.Duration
	armed     bool
}

// Set starts the countdown from d at clock time now.
func (c *Cooldown) Set(d, now, interval time.Duration) {
	c.remaining = d
	c.next = now + interval
	c.armed = d > 0
}

// Advance applies every tick whose deadline is at or before now.
func (c *Cooldown) Advance(now, step, interval time.Duration) {
	for c.armed && now >= c.next {
		c.remaining -= step
		if c.remaining <= 0 {
			c.armed = false
			return
		}
		c.next += interval
	}
}

// Stop releases the pending wake. The remaining value is kept for display.
func (c *Cooldown) Stop() {
	c.armed = false
}

// Ready reports whether the action may run again.
func (c Cooldown) Ready() bool {
	return c.remaining <= 0
}

func (c Cooldown) Remaining() time.Duration {
	return c.remaining
}

// Armed reports whether a tick is scheduled.
func (c Cooldown) Armed() bool {
	return c.armed
}
