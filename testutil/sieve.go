package testutil

// Sieve returns a table where composite[i] is false exactly when i is prime,
// for 0 <= i <= limit. It is the reference the trial-division predicate is
// checked against.
func Sieve(limit int) []bool {
	if limit < 0 {
		return nil
	}
	composite := make([]bool, limit+1)
	composite[0] = true
	if limit >= 1 {
		composite[1] = true
	}
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}
	return composite
}

// Primes lists the primes up to and including limit, in ascending order.
func Primes(limit int) []int64 {
	var out []int64
	for i, c := range Sieve(limit) {
		if !c {
			out = append(out, int64(i))
		}
	}
	return out
}
