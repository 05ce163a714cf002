package bench

import "time"

// elapsedSeconds reports the time since start in seconds at millisecond resolution.
func elapsedSeconds(start time.Time) float64 {
	return float64(time.Since(start).Milliseconds()) / 1000.0
}
