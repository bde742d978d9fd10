/*
 * Copyright (c) 2020. Neosemantix, Inc.
 * Author: Umesh Patil
 */

package gcd

import "testing"

// The two cores are compared over dense operand grids of growing size so
// the division-free binary reduction can be weighed against the modulo one.

func runGrid(size int32, pair func(a, b int32) int32) {
	for a := int32(1); a <= size; a++ {
		for b := int32(1); b <= size; b++ {
			pair(a, b)
		}
	}
}

func benchmarkPair(b *testing.B, pair func(a, b int32) int32) {
	testset := []struct {
		name string
		size int32
	}{
		{name: "1e2", size: 100},
		{name: "1e3", size: 1000},
	}
	for _, test := range testset {
		b.Run(test.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				runGrid(test.size, pair)
			}
		})
	}
}

func BenchmarkEuclid(b *testing.B) {
	benchmarkPair(b, euclid2)
}

func BenchmarkStein(b *testing.B) {
	benchmarkPair(b, stein2)
}
