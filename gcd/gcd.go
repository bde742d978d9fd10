// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

// Package gcd computes the greatest common divisor of two or more signed
// 32-bit integers. Two reduction algorithms are offered: the classic modulo
// based Euclidean algorithm and the binary (Stein) algorithm which works on
// halving and subtraction only. Both carry two-operand, three-operand and
// variadic entry points, plus timed variants which report the wall clock
// cost of the computation alongside the result.
//
// Every entry point validates the complete operand set before any reduction
// runs. Two inputs are rejected: a set in which every operand is zero (the
// GCD is mathematically undefined there) and any operand equal to
// math.MinInt32 (its absolute value is not representable in 32 bits). On
// valid input both algorithms are total and terminating and the result is
// always positive.
package gcd

import (
	"math"

	"github.com/pkg/errors"
)

// ErrAllZero is reported when every operand in the set is zero.
var ErrAllZero = errors.New("gcd is undefined for an all-zero operand set")

// ErrOutOfRange is reported when an operand is math.MinInt32, the one
// 32-bit value whose absolute value cannot be represented in 32 bits.
var ErrOutOfRange = errors.New("operand has no representable absolute value")

// Abs32 finds the absolute value of the given integer. Callers must keep
// math.MinInt32 out; validate does that for every package entry point.
func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// validate checks the combined operand set before any reduction runs. The
// range check comes first so that no arithmetic ever touches a value which
// cannot be negated; the all-zero check follows. Both checks are pure.
func validate(ops []int32) error {
	for i, v := range ops {
		if v == math.MinInt32 {
			return errors.Wrapf(ErrOutOfRange, "operand %d", i)
		}
	}
	for _, v := range ops {
		if v != 0 {
			return nil
		}
	}
	return ErrAllZero
}
