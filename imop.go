package meshbench

import "golang.org/x/exp/constraints"

// Min returns the smallest value between two numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
