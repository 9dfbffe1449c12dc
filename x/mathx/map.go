package mathx

import "golang.org/x/exp/constraints"

// Map linearly maps x from [inMin,inMax] onto [outMin,outMax] using integer
// maths, truncating toward zero. The input is not
// clamped. A degenerate input range returns outMin.
func Map[T constraints.Signed](x, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
