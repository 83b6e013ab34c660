// Package cards implements the immutable card and deck model: colours,
// prices, discounts and deck parsing.
package cards

import "fmt"

// Colour is a token or card colour. The four "real" colours plus Wild are
// kept in a fixed order because that order is part of the wire format.
type Colour int

const (
	Purple Colour = iota
	Brown
	Yellow
	Red
	Wild
)

// RealColours lists the four real colours in wire order. Wild is never a
// pile colour and is excluded here.
var RealColours = [4]Colour{Purple, Brown, Yellow, Red}

// String renders the single-letter wire form of a real colour.
func (c Colour) String() string {
	switch c {
	case Purple:
		return "P"
	case Brown:
		return "B"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Wild:
		return "W"
	default:
		return fmt.Sprintf("Colour(%d)", int(c))
	}
}

// ParseRealColour maps a single wire letter to a real colour.
func ParseRealColour(s string) (Colour, error) {
	switch s {
	case "P":
		return Purple, nil
	case "B":
		return Brown, nil
	case "Y":
		return Yellow, nil
	case "R":
		return Red, nil
	default:
		return 0, fmt.Errorf("%w: bad colour letter %q", ErrBadColour, s)
	}
}

// Vector holds one non-negative count per real colour, indexed by Colour.
type Vector [4]int

// Add returns the element-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub returns the element-wise difference of v minus o.
func (v Vector) Sub(o Vector) Vector {
	var out Vector
	for i := range out {
		out[i] = v[i] - o[i]
	}
	return out
}

// Sum returns the total across all four real colours.
func (v Vector) Sum() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}
