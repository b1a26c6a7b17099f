package types

import (
	"fmt"
	"strings"
)

// TextSize is a hint for the backend's character magnification.
type TextSize int

const (
	SizeNormal TextSize = iota
	// SizeMedium is double height, single width.
	SizeMedium
	// SizeLarge is double height and double width.
	SizeLarge
)

// WidthFactor is how many grid cells one character occupies at this size.
func (s TextSize) WidthFactor() int {
	if s == SizeLarge {
		return 2
	}
	return 1
}

func (s TextSize) String() string {
	switch s {
	case SizeNormal:
		return "normal"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseTextSize parses a string into a TextSize value. Empty means normal.
func ParseTextSize(s string) (TextSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return SizeNormal, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeNormal, fmt.Errorf("unknown text size: %s", s)
	}
}

// HRIPosition says where the human readable text of a barcode goes.
type HRIPosition int

const (
	HRINone HRIPosition = iota
	HRIAbove
	HRIBelow
	HRIBoth
)

func (h HRIPosition) String() string {
	switch h {
	case HRINone:
		return "none"
	case HRIAbove:
		return "above"
	case HRIBelow:
		return "below"
	case HRIBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseHRIPosition parses a string into an HRIPosition. Empty means below.
func ParseHRIPosition(s string) (HRIPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return HRINone, nil
	case "above":
		return HRIAbove, nil
	case "", "below":
		return HRIBelow, nil
	case "both":
		return HRIBoth, nil
	default:
		return HRIBelow, fmt.Errorf("unknown hri position: %s", s)
	}
}

// ScaleMode controls how an image is fitted to the paper.
type ScaleMode int

const (
	ScaleNone ScaleMode = iota
	ScaleFit
	ScaleFill
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleNone:
		return "none"
	case ScaleFit:
		return "fit"
	case ScaleFill:
		return "fill"
	default:
		return "unknown"
	}
}

// ParseScaleMode parses a string into a ScaleMode. Empty means fit.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ScaleNone, nil
	case "", "fit":
		return ScaleFit, nil
	case "fill":
		return ScaleFill, nil
	default:
		return ScaleFit, fmt.Errorf("unknown scale mode: %s", s)
	}
}

// DrawerPin selects the connector pin that kicks the cash drawer.
type DrawerPin int

const (
	DrawerPin2 DrawerPin = 2
	DrawerPin5 DrawerPin = 5
)

// TextConfig configures a free text block.
type TextConfig struct {
	Align HAlign
	Wrap  bool
	Size  TextSize
}

// BarcodeConfig configures a barcode block. Height is in dots, Width is the
// module width multiplier.
type BarcodeConfig struct {
	Height int
	Width  int
	Align  HAlign
	HRI    HRIPosition
}

// DefaultBarcodeConfig returns the barcode settings used when none are given.
func DefaultBarcodeConfig() BarcodeConfig {
	return BarcodeConfig{
		Height: 80,
		Width:  2,
		Align:  AlignCenter,
		HRI:    HRIBelow,
	}
}

// ImageConfig configures an image block.
type ImageConfig struct {
	Label string
	Scale ScaleMode
}
