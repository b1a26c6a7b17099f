package layout

import "github.com/accntech/sharprinter/pkg/types"

// Cell is one column of a row. It is a value: every setter returns a
// modified copy, so a configured cell can be reused as a template.
//
//	layout.NewCell("Qty").Width(5).Align(types.AlignRight)
type Cell struct {
	content string
	width   int
	fixed   bool
	align   types.HAlign
	valign  types.VAlign
	wrap    bool
}

// NewCell returns a flexible, left/top aligned, non-wrapping cell.
func NewCell(content string) Cell {
	return Cell{content: Sanitize(content)}
}

// Width gives the cell an explicit column width.
func (c Cell) Width(n int) Cell {
	c.width = n
	c.fixed = true
	return c
}

// Flexible drops an explicit width so the cell shares the remaining row width.
func (c Cell) Flexible() Cell {
	c.width = 0
	c.fixed = false
	return c
}

func (c Cell) Align(a types.HAlign) Cell {
	c.align = a
	return c
}

func (c Cell) VAlign(v types.VAlign) Cell {
	c.valign = v
	return c
}

// Wrap enables greedy word wrap; otherwise long content is truncated.
func (c Cell) Wrap(enabled bool) Cell {
	c.wrap = enabled
	return c
}

// Content returns the sanitized content.
func (c Cell) Content() string { return c.content }

// ExplicitWidth returns the configured width and whether one was set.
func (c Cell) ExplicitWidth() (int, bool) { return c.width, c.fixed }

// IsFlexible reports whether the cell has no explicit width.
func (c Cell) IsFlexible() bool { return !c.fixed }

// Render lays the cell out at the given resolved width. Every returned
// line is exactly width runes and there is always at least one line.
func (c Cell) Render(width int) []string {
	if width < 0 {
		width = 0
	}
	if !c.wrap {
		return []string{Fit(c.content, width, c.align)}
	}

	wrapped := Wrap(c.content, width)
	if len(wrapped) == 0 {
		return []string{Blank(width)}
	}
	lines := make([]string, len(wrapped))
	for i, l := range wrapped {
		lines[i] = FormatLine(l, width, c.align)
	}
	return lines
}
