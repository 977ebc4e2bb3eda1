package starfan

import (
	"fmt"
	"io"
)

// tickStats holds per-tick counters. Only logged when debug mode is on.
type tickStats struct {
	spawned int
	culled  int
	alive   int
}

// debugMaxStars is the live star count above which debug mode warns.
const debugMaxStars = 1000

// SetDebugMode enables or disables debug mode. When enabled, every tick
// logs its spawn/cull counts to the debug writer (stderr by default) and
// warns when the star count grows past debugMaxStars.
func (c *Composition) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug logging. nil discards it.
func (c *Composition) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.debugOut = w
}

// debugLog prints tick stats to the debug writer.
func (c *Composition) debugLog(stats tickStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut,
		"[starfan] tick %d: spawned %d | culled %d | alive %d | fan %s\n",
		c.tick, stats.spawned, stats.culled, stats.alive, onOff(c.fan.IsEnabled()))
	if stats.alive > debugMaxStars {
		_, _ = fmt.Fprintf(c.debugOut, "[starfan] warning: %d live stars (threshold %d)\n",
			stats.alive, debugMaxStars)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
