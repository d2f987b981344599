package layout

// Fraction is an exact rational number kept in lowest terms. It is
// used as the remainder accumulator in track distribution so repeated
// layout passes never drift the way floating point does.
type Fraction struct {
	num int64
	den int64
}

// Zero as a fraction (0/1)
var FractionZero = Fraction{num: 0, den: 1}

// NewFraction creates a reduced fraction. A negative denominator moves
// the sign to the numerator. A zero denominator yields zero.
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		return FractionZero
	}
	g := gcd(abs64(num), abs64(den))
	sign := int64(1)
	if den < 0 {
		sign = -1
	}
	return Fraction{
		num: sign * num / g,
		den: abs64(sign * den / g),
	}
}

// FractionFromInt converts an integer.
func FractionFromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Add returns f + other.
func (f Fraction) Add(other Fraction) Fraction {
	return NewFraction(f.num*other.den+other.num*f.den, f.den*other.den)
}

// Mul returns f * other.
func (f Fraction) Mul(other Fraction) Fraction {
	return NewFraction(f.num*other.num, f.den*other.den)
}

// Floor returns the integer part, rounding toward negative infinity.
func (f Fraction) Floor() int64 {
	if f.den == 0 {
		return 0
	}
	if f.num >= 0 {
		return f.num / f.den
	}
	return (f.num - f.den + 1) / f.den
}

// Fract returns the fractional part, always in [0, 1).
func (f Fraction) Fract() Fraction {
	return NewFraction(f.num-f.Floor()*f.den, f.den)
}

// IsZero returns true if the fraction equals zero.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 1 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
