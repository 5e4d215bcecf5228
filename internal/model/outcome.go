package model

import "time"

// Axis selects which of an outcome's two independent classifications a
// computation runs over.
type Axis string

const (
	AxisParity Axis = "parity"
	AxisSize   Axis = "size"
)

// Axes lists both classification axes in canonical order.
var Axes = []Axis{AxisParity, AxisSize}

// Label is one classification value. Each axis admits exactly two.
type Label string

const (
	Odd   Label = "ODD"
	Even  Label = "EVEN"
	Big   Label = "BIG"
	Small Label = "SMALL"
)

// Outcome is one classified block result, the unit every analysis consumes.
// Height is the canonical ordering key; analyses re-sort by it as needed.
type Outcome struct {
	Height int64     `json:"height"` // block height, unique
	Hash   string    `json:"hash"`   // block hash the digit was taken from
	Digit  int       `json:"digit"`  // result digit, 0-9
	Parity Label     `json:"parity"` // Even iff Digit is even
	Size   Label     `json:"size"`   // Big iff Digit >= 5
	Time   time.Time `json:"time"`   // block timestamp, display only
}

// ParityOf derives the parity label for a result digit.
func ParityOf(digit int) Label {
	if digit%2 == 0 {
		return Even
	}
	return Odd
}

// SizeOf derives the magnitude label for a result digit.
func SizeOf(digit int) Label {
	if digit >= 5 {
		return Big
	}
	return Small
}

// ValueFor returns the outcome's classification on the given axis.
func (o Outcome) ValueFor(axis Axis) Label {
	if axis == AxisSize {
		return o.Size
	}
	return o.Parity
}
