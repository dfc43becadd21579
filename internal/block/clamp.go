package block

import "golang.org/x/exp/constraints"

// ClampLo raises v to lo if v is below it.
func ClampLo[T constraints.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// ClampHi lowers v to hi if v is above it.
func ClampHi[T constraints.Ordered](v, hi T) T {
	if v > hi {
		return hi
	}
	return v
}
