package game

// Clock turns absolute timestamps (seconds) into per-frame deltas.
type Clock struct {
	last float64
}

// Tick returns the seconds elapsed since the previous call, or since 0 on
// the first call. A timestamp older than the previous one yields 0.
func (c *Clock) Tick(now float64) float32 {
	delta := now - c.last
	c.last = now
	if delta < 0 {
		return 0
	}
	return float32(delta)
}
