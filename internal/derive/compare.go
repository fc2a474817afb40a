// Package derive computes values over selected records: comparison ratios
// between bodies, mission cost and reliability, and mission simulation.
// Every function is pure; randomness is injected through Source.
package derive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

// Dimension is the quantity two bodies are compared on.
type Dimension int

const (
	// DimSize compares diameters in km.
	DimSize Dimension = iota
	// DimMass compares masses in Earth masses.
	DimMass
	// DimTemperature compares |celsius|+273.
	DimTemperature
)

var dimensionNames = [...]string{
	DimSize:        "size",
	DimMass:        "mass",
	DimTemperature: "temperature",
}

// String returns the dimension name accepted by ParseDimension.
func (d Dimension) String() string {
	if d >= 0 && int(d) < len(dimensionNames) {
		return dimensionNames[d]
	}
	return "unknown"
}

// Next cycles to the following dimension.
func (d Dimension) Next() Dimension {
	return Dimension((int(d) + 1) % len(dimensionNames))
}

// ParseDimension converts a name to a Dimension. The empty string is
// DimSize.
func ParseDimension(s string) (Dimension, error) {
	if s == "" {
		return DimSize, nil
	}
	for i, name := range dimensionNames {
		if strings.EqualFold(s, name) {
			return Dimension(i), nil
		}
	}
	return DimSize, fmt.Errorf("unknown dimension %q (want size, mass or temperature)", s)
}

// ScaleValue returns the number a body is compared by. Temperature is
// shifted to |celsius|+273 so that every value is positive; it is not a
// Kelvin conversion.
func ScaleValue(b dataset.Body, d Dimension) float64 {
	switch d {
	case DimMass:
		return b.Mass
	case DimTemperature:
		return math.Abs(b.Temperature) + 273
	default:
		return b.Diameter
	}
}

// DisplayValue renders a body's raw value in the dimension's unit.
func DisplayValue(b dataset.Body, d Dimension) string {
	switch d {
	case DimMass:
		return strconv.FormatFloat(b.Mass, 'f', -1, 64) + " Earth masses"
	case DimTemperature:
		return strconv.FormatFloat(b.Temperature, 'f', -1, 64) + "°C"
	default:
		return groupThousands(b.Diameter) + " km"
	}
}

// Ratio returns how many times larger the bigger value is. Two zeros give
// 1; a single zero gives +Inf.
func Ratio(a, b dataset.Body, d Dimension) float64 {
	return ratio(ScaleValue(a, d), ScaleValue(b, d))
}

func ratio(x, y float64) float64 {
	hi, lo := math.Max(x, y), math.Min(x, y)
	switch {
	case hi == 0 && lo == 0:
		return 1
	case lo == 0:
		return math.Inf(1)
	}
	return hi / lo
}

// Comparison is the outcome of comparing two bodies.
type Comparison struct {
	Dimension Dimension
	Larger    dataset.Body
	Smaller   dataset.Body
	Ratio     float64
}

// Compare orders a and b by dimension d. On a tie a is reported as larger.
func Compare(a, b dataset.Body, d Dimension) Comparison {
	c := Comparison{Dimension: d, Larger: a, Smaller: b, Ratio: Ratio(a, b, d)}
	if ScaleValue(b, d) > ScaleValue(a, d) {
		c.Larger, c.Smaller = b, a
	}
	return c
}

// String renders the comparison as a sentence.
func (c Comparison) String() string {
	if c.Ratio == 1 {
		return fmt.Sprintf("%s and %s are equal by %s", c.Larger.Name, c.Smaller.Name, c.Dimension)
	}
	if math.IsInf(c.Ratio, 1) {
		return fmt.Sprintf("%s has no measurable %s, so %s is immeasurably %s", c.Smaller.Name, c.Dimension, c.Larger.Name, adjective(c.Dimension))
	}
	return fmt.Sprintf("%s is %.2fx %s than %s", c.Larger.Name, c.Ratio, adjective(c.Dimension), c.Smaller.Name)
}

func adjective(d Dimension) string {
	switch d {
	case DimMass:
		return "more massive"
	case DimTemperature:
		return "more extreme in temperature"
	default:
		return "larger"
	}
}

// RelativeSize maps value onto [lo, hi] in proportion to peak. A
// non-positive peak maps everything to lo.
func RelativeSize(value, peak, lo, hi float64) float64 {
	if peak <= 0 {
		return lo
	}
	return lo + value/peak*(hi-lo)
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
