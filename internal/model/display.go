package model

// Presentation tokens are fixed two-entry mappings per axis. They live here
// so every consumer (alert sinks, terminal rendering) reports the same pair
// of mutually exclusive labels and colors for an axis.

var displayNames = map[Label]string{
	Odd:   "Odd",
	Even:  "Even",
	Big:   "Big",
	Small: "Small",
}

var displayColors = map[Label]string{
	Odd:   "#e74c3c",
	Even:  "#3498db",
	Big:   "#e67e22",
	Small: "#2ecc71",
}

// Display is the operator-facing name for a classification value.
func (l Label) Display() string {
	return displayNames[l]
}

// Color is the presentation color token for a classification value.
func (l Label) Color() string {
	return displayColors[l]
}

// Short is the single-letter cell marker used by road rendering.
func (l Label) Short() string {
	if l == "" {
		return " "
	}
	return string(l[0])
}

// LabelsFor lists the two values an axis admits, in display order.
func LabelsFor(axis Axis) []Label {
	if axis == AxisSize {
		return []Label{Big, Small}
	}
	return []Label{Odd, Even}
}
