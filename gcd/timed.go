// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package gcd

import "time"

// Timed carries the result of a timed reduction together with the wall
// clock cost of computing it. Elapsed is read from Go's monotonic clock so
// it is never negative and is not affected by wall clock adjustments.
type Timed struct {
	Gcd     int32
	Elapsed time.Duration
}

// TimedEuclid is Euclid with the elapsed computation time reported.
func TimedEuclid(a, b int32) (Timed, error) {
	return timedFold(euclidFold, []int32{a, b})
}

// TimedEuclid3 is Euclid3 with the elapsed computation time reported.
func TimedEuclid3(a, b, c int32) (Timed, error) {
	return timedFold(euclidFold, []int32{a, b, c})
}

// TimedEuclidAll is EuclidAll with the elapsed computation time reported.
func TimedEuclidAll(a, b int32, rest ...int32) (Timed, error) {
	ops := make([]int32, 0, 2+len(rest))
	ops = append(ops, a, b)
	ops = append(ops, rest...)
	return timedFold(euclidFold, ops)
}

// TimedStein is Stein with the elapsed computation time reported.
func TimedStein(a, b int32) (Timed, error) {
	return timedFold(steinFold, []int32{a, b})
}

// TimedStein3 is Stein3 with the elapsed computation time reported.
func TimedStein3(a, b, c int32) (Timed, error) {
	return timedFold(steinFold, []int32{a, b, c})
}

// TimedSteinAll is SteinAll with the elapsed computation time reported.
func TimedSteinAll(a, b int32, rest ...int32) (Timed, error) {
	ops := make([]int32, 0, 2+len(rest))
	ops = append(ops, a, b)
	ops = append(ops, rest...)
	return timedFold(steinFold, ops)
}

// timedFold runs validation plus reduction exactly once between two clock
// reads. The untimed fold is invoked as is, so the timed variants can never
// disagree with their untimed counterparts.
func timedFold(fold func([]int32) (int32, error), ops []int32) (Timed, error) {
	start := time.Now()
	g, err := fold(ops)
	elapsed := time.Since(start)
	if err != nil {
		return Timed{}, err
	}
	return Timed{Gcd: g, Elapsed: elapsed}, nil
}
