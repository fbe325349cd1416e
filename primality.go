// Package primality decides whether an integer is prime by trial division.
//
// Candidates are restricted to the 6k±1 residues: every prime above 3 is
// congruent to 1 or 5 modulo 6, so after ruling out 2 and 3 only two of
// every six integers need to be tried as divisors.
package primality

import "github.com/comalice/primality/internal/isqrt"

// IsPrimeNumber reports whether n is prime.
//
// It is total over int64: zero, one and every negative number are not prime.
// The search bound is an exact integer square root, so inputs near large
// perfect squares are never misjudged by float rounding.
func IsPrimeNumber(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	limit := int64(isqrt.Floor(uint64(n)))
	for i := int64(5); i <= limit; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
