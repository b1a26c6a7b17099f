package backend

import (
	"fmt"
	"path/filepath"

	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/types"
)

// Line is one rendered page line.
type Line struct {
	Text string
	Kind LineKind
}

// LineKind tells a styled writer how a line was produced.
type LineKind int

const (
	LineText LineKind = iota
	LineLarge
	LinePlaceholder
	LineHRI
	LineBlank
)

// sheet renders backend primitives onto a fixed-width page. Every line it
// produces is exactly width runes wide.
type sheet struct {
	width int
	lines []Line
}

func newSheet(width int) *sheet {
	if width < 1 {
		width = types.DefaultPrinterConfig().PageWidth
	}
	return &sheet{width: width}
}

func (s *sheet) reset() { s.lines = s.lines[:0] }

func (s *sheet) add(kind LineKind, text string, align types.HAlign) {
	s.lines = append(s.lines, Line{Text: layout.Fit(text, s.width, align), Kind: kind})
}

func (s *sheet) text(text string, align types.HAlign, size types.TextSize) {
	kind := LineText
	if size == types.SizeLarge {
		kind = LineLarge
	}
	s.add(kind, text, align)
}

func (s *sheet) feed(count int) {
	for i := 0; i < count; i++ {
		s.add(LineBlank, "", types.AlignLeft)
	}
}

func (s *sheet) barcode(data string, cfg types.BarcodeConfig) {
	if cfg.HRI == types.HRIAbove || cfg.HRI == types.HRIBoth {
		s.add(LineHRI, data, cfg.Align)
	}
	s.add(LinePlaceholder, fmt.Sprintf("[barcode %dx%d]", cfg.Width, cfg.Height), cfg.Align)
	if cfg.HRI == types.HRIBelow || cfg.HRI == types.HRIBoth {
		s.add(LineHRI, data, cfg.Align)
	}
}

func (s *sheet) image(path, label string, scale types.ScaleMode) {
	s.add(LinePlaceholder, fmt.Sprintf("[image %s %s]", filepath.Base(path), scale), types.AlignCenter)
	if label != "" {
		s.add(LineText, label, types.AlignCenter)
	}
}

func (s *sheet) cut(distance int) {
	s.feed(distance)
	s.add(LinePlaceholder, "8<"+layout.Repeat('-', s.width-2), types.AlignLeft)
}

func (s *sheet) drawer(pin types.DrawerPin, onMs, offMs int) {
	s.add(LinePlaceholder, fmt.Sprintf("[drawer pin %d %d/%dms]", pin, onMs, offMs), types.AlignCenter)
}

// texts returns the plain text of every line.
func (s *sheet) texts() []string {
	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Text
	}
	return out
}
