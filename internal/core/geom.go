// Package core provides the dependency-free building blocks of the chomp
// platform: the screen buffer, input frames, runtime configuration, and
// small geometry helpers. Nothing here imports Bubble Tea, so game logic
// stays pure and testable headless.
package core

// Clamp limits an integer to the inclusive range [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF limits a float64 to the inclusive range [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns |x| for integers.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
