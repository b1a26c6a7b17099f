package types

import (
	"fmt"
	"strings"
)

// HAlign is the horizontal alignment of a line inside its column.
type HAlign int

const (
	// AlignLeft pads on the right (default).
	AlignLeft HAlign = iota
	// AlignCenter pads on both sides.
	AlignCenter
	// AlignRight pads on the left.
	AlignRight
)

// String returns the string representation of the alignment
func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHAlign parses a string into an HAlign value. Empty means left.
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("unknown horizontal alignment: %s", s)
	}
}

// VAlign is the vertical position of a cell's content inside a taller row.
type VAlign int

const (
	// VAlignTop keeps content on the first rows (default).
	VAlignTop VAlign = iota
	// VAlignCenter splits the padding, extra blank line at the bottom.
	VAlignCenter
	// VAlignBottom pushes content to the last rows.
	VAlignBottom
)

// String returns the string representation of the alignment
func (v VAlign) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseVAlign parses a string into a VAlign value. Empty means top.
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return VAlignTop, nil
	case "center", "centre", "middle":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	default:
		return VAlignTop, fmt.Errorf("unknown vertical alignment: %s", s)
	}
}
