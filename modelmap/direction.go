package modelmap

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Direction -trimprefix=To -output=direction_string.go

// Direction selects which side of a specification is read and which is written.
type Direction int

const (
	_ Direction = iota // zero value is not a valid direction

	// ToWireFormat maps a model into a wire-format record.
	ToWireFormat
	// ToModel maps a wire-format record into a model record.
	ToModel
)

// IsValid returns true for ToWireFormat and ToModel.
func (d Direction) IsValid() bool {
	return d == ToWireFormat || d == ToModel
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case ToWireFormat:
		return ToModel
	case ToModel:
		return ToWireFormat
	default:
		return d
	}
}

// ParseDirection parses a direction name as used on the command line.
// Accepted: "wire", "to-wire", "model", "to-model" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wire", "to-wire", "towireformat":
		return ToWireFormat, nil
	case "model", "to-model", "tomodel":
		return ToModel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
