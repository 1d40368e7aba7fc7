package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// CountDigits returns the number of base 10 digits in n. Zero has one
// digit.
func CountDigits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10**n.
func Pow10[T constraints.Integer](n int) T {
	p := T(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// SplitDigits splits the last at digits off n, such that
// SplitDigits(1234, 2) returns 12, 34. The right half drops its leading
// zeros: SplitDigits(100000, 3) returns 100, 0.
func SplitDigits[T constraints.Integer](n T, at int) (left, right T) {
	d := Pow10[T](at)
	left = n / d
	return left, n - left*d
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields returns the ints of the whitespace separated fields of s.
func Fields(s string) []int {
	return Ints(strings.Fields(s)...)
}

// TrimPrefix is like strings.TrimPrefix but exits if s lacks prefix.
func TrimPrefix(s, prefix string) string {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q lacks %q", s, prefix)
	}
	return rest
}

// GCD returns the greatest common divisor of a and b, which is never
// negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return AbsDiff(a, 0)
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	return Fold(integers[1:], func(acc, n int) int {
		return acc / GCD(acc, n) * n
	}, integers[0])
}
