package abacus

import "math"

// Column geometry of the soroban.
const (
	MaxDigits           = 4
	MaxHeavenPositions  = 2
	MaxEarthPositions   = 5
	MaxEarthBeads       = 4
	DefaultPadding      = 1
	DefaultCornerRadius = 10
	slotsPerColumn      = MaxHeavenPositions + MaxEarthPositions + 1
)

// maxPow10 is the largest exponent whose power fits in an int64.
const maxPow10 = 18

// Pow10 returns 10^exp using exponentiation by squaring. Exponents outside
// [0,18] are clamped.
func Pow10(exp int) int {
	assertRange("Pow10", exp, 0, maxPow10)
	exp = min(max(exp, 0), maxPow10)
	base, result := 10, 1
	for {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp == 0 {
			return result
		}
		base *= base
	}
}

// DigitSequence holds the decimal digits of a value, most significant first.
type DigitSequence [MaxDigits]int

// Digits splits v into MaxDigits decimal digits. Digits above 10^MaxDigits
// are dropped, so 12345 yields [2 3 4 5]. Negative values read as 0.
func Digits(v int) DigitSequence {
	assertRange("Digits", v, 0, math.MaxInt)
	if v < 0 {
		v = 0
	}
	var ds DigitSequence
	for i := range MaxDigits {
		ds[MaxDigits-1-i] = v / Pow10(i) % 10
	}
	return ds
}

// Value joins the digits back by place value.
func (ds DigitSequence) Value() int {
	v := 0
	for _, d := range ds {
		v = v*10 + d
	}
	return v
}
