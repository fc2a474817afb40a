package derive

import (
	"math"
	"testing"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

var (
	earth   = dataset.Body{ID: "earth", Name: "Earth", Diameter: 12756, Mass: 1, Temperature: 15}
	jupiter = dataset.Body{ID: "jupiter", Name: "Jupiter", Diameter: 142984, Mass: 317.8, Temperature: -110}
	sun     = dataset.Body{ID: "sun", Name: "Sun", Diameter: 1392700, Mass: 333000, Temperature: 5500}
	moon    = dataset.Body{ID: "moon", Name: "Moon", Diameter: 3475, Mass: 0.012, Temperature: -20}
	void    = dataset.Body{ID: "void", Name: "Void", Temperature: -273}
)

var dimensions = []Dimension{DimSize, DimMass, DimTemperature}

func TestEarthJupiterSize(t *testing.T) {
	t.Parallel()
	c := Compare(earth, jupiter, DimSize)
	if c.Larger.ID != "jupiter" || c.Smaller.ID != "earth" {
		t.Errorf("Compare larger=%s smaller=%s", c.Larger.ID, c.Smaller.ID)
	}
	if math.Abs(c.Ratio-11.21) > 0.005 {
		t.Errorf("ratio = %v, want ≈11.21", c.Ratio)
	}
	if math.Abs(c.Ratio-142984.0/12756.0) > 1e-12 {
		t.Errorf("ratio = %v, want exactly 142984/12756", c.Ratio)
	}
}

func TestRatioIsSymmetric(t *testing.T) {
	t.Parallel()
	bodies := []dataset.Body{earth, jupiter, sun, moon}
	for _, d := range dimensions {
		for _, a := range bodies {
			for _, b := range bodies {
				if Ratio(a, b, d) != Ratio(b, a, d) {
					t.Errorf("Ratio(%s,%s,%s) != Ratio(%s,%s,%s)", a.ID, b.ID, d, b.ID, a.ID, d)
				}
			}
		}
	}
}

func TestRatioWithSelfIsOne(t *testing.T) {
	t.Parallel()
	for _, d := range dimensions {
		for _, b := range []dataset.Body{earth, jupiter, sun, moon, void} {
			if got := Ratio(b, b, d); got != 1 {
				t.Errorf("Ratio(%s,%s,%s) = %v, want 1", b.ID, b.ID, d, got)
			}
		}
	}
}

func TestRatioZeroes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b dataset.Body
		dim  Dimension
		want float64
	}{
		{"BothZero", void, void, DimSize, 1},
		{"OneZero", void, earth, DimSize, math.Inf(1)},
		{"OneZeroReversed", earth, void, DimMass, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ratio(tt.a, tt.b, tt.dim); got != tt.want {
				t.Errorf("Ratio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleValueTemperatureShift(t *testing.T) {
	t.Parallel()
	tests := []struct {
		body dataset.Body
		want float64
	}{
		{earth, 288},
		{jupiter, 383},
		{moon, 293},
		{void, 546},
	}
	for _, tt := range tests {
		if got := ScaleValue(tt.body, DimTemperature); got != tt.want {
			t.Errorf("ScaleValue(%s, temperature) = %v, want %v", tt.body.ID, got, tt.want)
		}
	}
}

func TestCompareTieKeepsOrder(t *testing.T) {
	t.Parallel()
	twin := earth
	twin.ID = "twin"
	c := Compare(earth, twin, DimSize)
	if c.Larger.ID != "earth" {
		t.Errorf("tie larger = %s, want earth", c.Larger.ID)
	}
	if got := c.String(); got != "Earth and Earth are equal by size" {
		t.Errorf("String() = %q", got)
	}
}

func TestComparisonString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b dataset.Body
		dim  Dimension
		want string
	}{
		{"Ratio", earth, jupiter, DimSize, "Jupiter is 11.21x larger than Earth"},
		{"Equal", earth, earth, DimMass, "Earth and Earth are equal by mass"},
		{"OneZero", void, earth, DimSize, "Void has no measurable size, so Earth is immeasurably larger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b, tt.dim).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDimension(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Dimension
		wantErr bool
	}{
		{"", DimSize, false},
		{"size", DimSize, false},
		{"MASS", DimMass, false},
		{"temperature", DimTemperature, false},
		{"luminosity", DimSize, true},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDimension(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if DimTemperature.Next() != DimSize {
		t.Error("Next should wrap to size")
	}
}

func TestDisplayValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		body dataset.Body
		dim  Dimension
		want string
	}{
		{jupiter, DimSize, "142,984 km"},
		{sun, DimSize, "1,392,700 km"},
		{moon, DimSize, "3,475 km"},
		{jupiter, DimMass, "317.8 Earth masses"},
		{jupiter, DimTemperature, "-110°C"},
	}
	for _, tt := range tests {
		if got := DisplayValue(tt.body, tt.dim); got != tt.want {
			t.Errorf("DisplayValue(%s, %s) = %q, want %q", tt.body.ID, tt.dim, got, tt.want)
		}
	}
}

func TestRelativeSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		value, peak, lo, hi float64
		want                float64
	}{
		{"Peak", 100, 100, 40, 200, 200},
		{"Half", 50, 100, 40, 200, 120},
		{"Zero", 0, 100, 40, 200, 40},
		{"NoPeak", 10, 0, 40, 200, 40},
	}
	for _, tt := range tests {
		if got := RelativeSize(tt.value, tt.peak, tt.lo, tt.hi); got != tt.want {
			t.Errorf("%s: RelativeSize = %v, want %v", tt.name, got, tt.want)
		}
	}
}
