// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import "github.com/comalice/primality/testutil"

// Sizes are the magnitudes benchmarked, keyed by sub-benchmark name. Each
// value is prime so the loop runs to the bound.
var Sizes = []struct {
	Name string
	N    int64
}{
	{"1e3", 997},
	{"1e7", 9999991},
	{"2^31", 2147483647},
	{"2^32", 4294967291},
	{"1e12", 1000000000039},
}

// Window returns count consecutive inputs starting at from, for throughput
// runs over a mix of primes and composites.
func Window(from int64, count int) []int64 {
	if count < 1 {
		count = 1
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = from + int64(i)
	}
	return out
}

// FixtureInputs returns the non-slow fixture inputs.
func FixtureInputs() []int64 {
	cases := testutil.Fast(testutil.MustDefaultCases())
	out := make([]int64, len(cases))
	for i, c := range cases {
		out[i] = c.N
	}
	return out
}
