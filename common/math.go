package common

import "math/rand/v2"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func Clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// RandomInRange returns an integer in [lo, hi], both ends included.
func RandomInRange(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if r == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + r.IntN(hi-lo+1)
}
