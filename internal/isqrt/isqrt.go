// Package isqrt computes exact integer square roots.
//
// The float64 seed from math.Sqrt is only 53 bits wide, so for inputs above
// 2^52 it can land one above or below the true root. Floor corrects the seed
// in integer arithmetic before returning it.
package isqrt

import "math"

// maxRoot is the largest r whose square fits in a uint64.
const maxRoot = 1<<32 - 1

// Floor returns the largest r such that r*r <= n.
func Floor(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
