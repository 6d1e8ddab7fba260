package scoring

import "math"

// round is half-up, matching how the scores were always reported.
func round(x float64) int { return int(math.Floor(x + 0.5)) }

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > PerfectScore {
		return PerfectScore
	}
	return v
}
