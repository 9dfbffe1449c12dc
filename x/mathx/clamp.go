// Package mathx holds the small integer helpers the menu code needs for
// value entry and the progress bar.
package mathx

import "golang.org/x/exp/constraints"

// Clamp pins v into the closed range spanned by lo and hi, in either order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
