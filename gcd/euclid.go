// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package gcd

// Euclid calculates the greatest common divisor of a and b using the modulo
// based Euclidean algorithm.
func Euclid(a, b int32) (int32, error) {
	return euclidFold([]int32{a, b})
}

// Euclid3 calculates the greatest common divisor of three integers.
func Euclid3(a, b, c int32) (int32, error) {
	return euclidFold([]int32{a, b, c})
}

// EuclidAll calculates the greatest common divisor of two or more integers.
// The whole operand set is validated together before any reduction runs, so
// a zero here and there is fine as long as the set is not entirely zero.
func EuclidAll(a, b int32, rest ...int32) (int32, error) {
	ops := make([]int32, 0, 2+len(rest))
	ops = append(ops, a, b)
	ops = append(ops, rest...)
	return euclidFold(ops)
}

// euclidFold validates the set and folds the pairwise reduction left to
// right. GCD is associative and commutative so the fold order does not
// affect the result.
func euclidFold(ops []int32) (int32, error) {
	if err := validate(ops); err != nil {
		return 0, err
	}
	acc := euclid2(ops[0], ops[1])
	for _, v := range ops[2:] {
		acc = euclid2(acc, v)
	}
	return acc, nil
}

// euclid2 reduces |a| and |b| by repeated remainder: the larger is replaced
// by itself modulo the smaller until one side reaches zero. Exactly one of
// the finals is then zero and the other holds the divisor, so their sum
// extracts it without a branch. Each step strictly shrinks the larger
// operand, which guarantees termination.
func euclid2(a, b int32) int32 {
	a, b = Abs32(a), Abs32(b)
	for a != 0 && b != 0 {
		if a >= b {
			a %= b
		} else {
			b %= a
		}
	}
	return a + b
}
