package types

import "strings"

// Axis identifies one side of the two-asset pool.
type Axis uint8

const (
	AxisA Axis = iota
	AxisB
)

// Other returns the opposite axis.
func (a Axis) Other() Axis {
	if a == AxisA {
		return AxisB
	}
	return AxisA
}

func (a Axis) String() string {
	switch a {
	case AxisA:
		return "a"
	case AxisB:
		return "b"
	default:
		return "invalid"
	}
}

// Validate returns ErrInvalidAxis for values outside the two-axis domain.
func (a Axis) Validate() error {
	if a != AxisA && a != AxisB {
		return ErrInvalidAxis.Wrapf("axis value %d", a)
	}
	return nil
}

// ParseAxis parses "a"/"b" (case-insensitive) into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return AxisA, nil
	case "b":
		return AxisB, nil
	default:
		return AxisA, ErrInvalidAxis.Wrapf("cannot parse %q", s)
	}
}
