package layout

import "strings"

// Row is an ordered set of cells printed side by side. Cells are collected
// with Add and laid out once, when Lines or Widths is first called after the
// last change.
type Row struct {
	pageWidth int
	cells     []Cell

	widths []int
	lines  []string
	dirty  bool
}

// NewRow starts a row for a page of pageWidth runes.
func NewRow(pageWidth int, cells ...Cell) *Row {
	r := &Row{pageWidth: pageWidth}
	return r.Add(cells...)
}

// Add appends cells to the row.
func (r *Row) Add(cells ...Cell) *Row {
	r.cells = append(r.cells, cells...)
	r.dirty = true
	return r
}

// Cells returns the cells in column order.
func (r *Row) Cells() []Cell { return r.cells }

// Widths returns the resolved width of every cell.
func (r *Row) Widths() []int {
	r.layout()
	return r.widths
}

// Height returns the number of printed lines of the row.
func (r *Row) Height() int {
	r.layout()
	return len(r.lines)
}

// Lines returns the printed lines of the row, top to bottom.
func (r *Row) Lines() []string {
	r.layout()
	return r.lines
}

func (r *Row) layout() {
	if !r.dirty && r.widths != nil {
		return
	}
	r.dirty = false
	r.widths = ResolveWidths(r.cells, r.pageWidth)
	r.lines = compose(r.cells, r.widths)
}

// ResolveWidths computes the width of every cell. Flexible cells share what
// explicit widths leave of pageWidth equally; the division remainder is
// dropped and a negative share becomes 0. Explicit widths are used as given.
func ResolveWidths(cells []Cell, pageWidth int) []int {
	fixedSum, flexCount := 0, 0
	for _, c := range cells {
		if w, ok := c.ExplicitWidth(); ok {
			fixedSum += w
		} else {
			flexCount++
		}
	}

	share := 0
	if flexCount > 0 {
		share = (pageWidth - fixedSum) / flexCount
		if share < 0 {
			share = 0
		}
	}

	widths := make([]int, len(cells))
	for i, c := range cells {
		if w, ok := c.ExplicitWidth(); ok {
			widths[i] = w
		} else {
			widths[i] = share
		}
	}
	return widths
}

// LayoutRow is the one-shot form of NewRow(pageWidth, cells...).Lines().
func LayoutRow(pageWidth int, cells ...Cell) []string {
	return compose(cells, ResolveWidths(cells, pageWidth))
}

func compose(cells []Cell, widths []int) []string {
	if len(cells) == 0 {
		return nil
	}

	columns := make([][]string, len(cells))
	height := 0
	for i, c := range cells {
		columns[i] = c.Render(widths[i])
		if n := len(columns[i]); n > height {
			height = n
		}
	}
	for i, c := range cells {
		columns[i] = AlignVertical(columns[i], height, c.valign, widths[i])
	}

	lines := make([]string, height)
	var sb strings.Builder
	for i := 0; i < height; i++ {
		sb.Reset()
		for _, col := range columns {
			if i < len(col) {
				sb.WriteString(col[i])
			}
		}
		lines[i] = sb.String()
	}
	return lines
}
