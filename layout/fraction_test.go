package layout

import "testing"

func TestNewFractionReduces(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{"AlreadyReduced", 3, 7, 3, 7},
		{"Reducible", 6, 4, 3, 2},
		{"NegativeNum", -6, 4, -3, 2},
		{"NegativeDen", 1, -2, -1, 2},
		{"BothNegative", -3, -9, 1, 3},
		{"ZeroNum", 0, 5, 0, 1},
		{"ZeroDen", 5, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFraction(tt.num, tt.den)
			if f.num != tt.wantNum || f.den != tt.wantDen {
				t.Errorf("Expected %d/%d, got %d/%d", tt.wantNum, tt.wantDen, f.num, f.den)
			}
		})
	}
}

func TestFractionFloor(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		expected int64
	}{
		{"PositiveExact", 6, 2, 3},
		{"PositiveRoundsDown", 7, 2, 3},
		{"NegativeExact", -6, 2, -3},
		{"NegativeRoundsDown", -7, 2, -4},
		{"Zero", 0, 1, 0},
		{"BelowOne", 2, 3, 0},
		{"NegativeBelowOne", -2, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFraction(tt.num, tt.den).Floor(); got != tt.expected {
				t.Errorf("Expected floor %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFractionFract(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{"Half", 7, 2, 1, 2},
		{"Exact", 6, 2, 0, 1},
		{"NegativeHalf", -7, 2, 1, 2},
		{"NegativeThird", -4, 3, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFraction(tt.num, tt.den).Fract()
			if f.num != tt.wantNum || f.den != tt.wantDen {
				t.Errorf("Expected fract %d/%d, got %d/%d", tt.wantNum, tt.wantDen, f.num, f.den)
			}
			if f.num < 0 || f.num >= f.den {
				t.Errorf("Fract %d/%d outside [0, 1)", f.num, f.den)
			}
		})
	}
}

func TestFractionArithmetic(t *testing.T) {
	sum := NewFraction(1, 3).Add(NewFraction(1, 6))
	if sum.num != 1 || sum.den != 2 {
		t.Errorf("Expected 1/3 + 1/6 = 1/2, got %d/%d", sum.num, sum.den)
	}

	prod := NewFraction(2, 3).Mul(NewFraction(3, 4))
	if prod.num != 1 || prod.den != 2 {
		t.Errorf("Expected 2/3 * 3/4 = 1/2, got %d/%d", prod.num, prod.den)
	}

	if !FractionZero.IsZero() {
		t.Error("Expected FractionZero.IsZero() to be true")
	}
	if NewFraction(1, 2).IsZero() {
		t.Error("Expected 1/2 to be non-zero")
	}
}

func TestFractionCarryDistribution(t *testing.T) {
	// Distributing 25 over 2 equal shares carries the half cell to the
	// second share.
	carry := FractionZero
	sizes := make([]int64, 2)
	for i := range sizes {
		raw := NewFraction(25, 2).Add(carry)
		sizes[i] = raw.Floor()
		carry = raw.Fract()
	}
	if sizes[0] != 12 || sizes[1] != 13 {
		t.Errorf("Expected [12 13], got %v", sizes)
	}
}
