// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package gcd

// Stein calculates the greatest common divisor of a and b using the binary
// (Stein) algorithm, which needs no division: only comparisons, halving and
// subtraction.
func Stein(a, b int32) (int32, error) {
	return steinFold([]int32{a, b})
}

// Stein3 calculates the greatest common divisor of three integers with the
// binary algorithm. The third operand is folded against the intermediate
// result of the first pairing, never against an original operand.
func Stein3(a, b, c int32) (int32, error) {
	return steinFold([]int32{a, b, c})
}

// SteinAll calculates the greatest common divisor of two or more integers
// with the binary algorithm. Validation covers the combined operand set.
func SteinAll(a, b int32, rest ...int32) (int32, error) {
	ops := make([]int32, 0, 2+len(rest))
	ops = append(ops, a, b)
	ops = append(ops, rest...)
	return steinFold(ops)
}

// steinFold mirrors euclidFold: validate once, then fold the pairwise core
// left to right over the absolute values.
func steinFold(ops []int32) (int32, error) {
	if err := validate(ops); err != nil {
		return 0, err
	}
	acc := stein2(Abs32(ops[0]), Abs32(ops[1]))
	for _, v := range ops[2:] {
		acc = stein2(acc, Abs32(v))
	}
	return acc, nil
}

// stein2 is the recursive binary reduction. Both arguments must be
// non-negative. A common factor of 2 is pulled out when both operands are
// even, a non-common factor of 2 is discarded, and two odd operands are
// reduced by subtraction (the difference of two odds is always even, so it
// is halved right away). Every recursion strictly decreases a+b and the
// depth is bounded by the bit width of int32.
func stein2(a, b int32) int32 {
	if a == b || a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	aOdd, bOdd := a&1 == 1, b&1 == 1
	switch {
	case !aOdd && !bOdd:
		return stein2(a>>1, b>>1) << 1
	case !aOdd:
		return stein2(a>>1, b)
	case !bOdd:
		return stein2(a, b>>1)
	case a > b:
		return stein2((a-b)>>1, b)
	default:
		return stein2((b-a)>>1, a)
	}
}
