// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SaturatingSub returns a-b, floored at zero. Negative b is treated as zero.
func SaturatingSub(a, b int) int {
	if b <= 0 {
		return a
	}
	if a <= b {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b, capped at math.MaxInt. Negative b is treated as zero.
func SaturatingAdd(a, b int) int {
	if b <= 0 {
		return a
	}
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
