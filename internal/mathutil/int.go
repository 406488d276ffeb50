package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntAbs returns the absolute value of an int.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv divides a by b rounding toward negative infinity.
// Integer division in Go truncates toward zero, which is wrong for
// negative world coordinates.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a mod b normalized into [0, b).
func FloorMod(a, b int) int {
	return ((a % b) + b) % b
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
