// Package table sequences rows, separators and feeds into the primitive
// actions of one receipt table.
package table

import (
	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/types"
)

// Builder accumulates the actions of a table. Rows are laid out as soon as
// they are added; nothing is printed until the owning queue executes.
type Builder struct {
	pageWidth int
	separator rune
	actions   []types.Action
}

// New creates a table builder for a page of pageWidth runes that draws
// separators with the given rune.
func New(pageWidth int, separator rune) *Builder {
	return &Builder{pageWidth: pageWidth, separator: separator}
}

// AddRow lays out the cells and appends one text action per printed line.
func (b *Builder) AddRow(cells ...layout.Cell) *Builder {
	for _, line := range layout.LayoutRow(b.pageWidth, cells...) {
		b.actions = append(b.actions, &types.TextAction{Lines: []string{line}})
	}
	return b
}

// AddSeparator appends a full width separator line.
func (b *Builder) AddSeparator() *Builder {
	b.actions = append(b.actions, &types.SeparatorAction{
		Line: layout.Repeat(b.separator, b.pageWidth),
	})
	return b
}

// FeedLine appends a request for n blank lines, one when n is omitted.
// The count is passed through unchecked.
func (b *Builder) FeedLine(n ...int) *Builder {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	b.actions = append(b.actions, &types.FeedAction{Count: count})
	return b
}

// Len returns the number of accumulated actions.
func (b *Builder) Len() int { return len(b.actions) }

// Build returns the accumulated actions as one table action. The builder
// keeps its own slice, so later calls do not alter a built table.
func (b *Builder) Build() *types.TableAction {
	actions := make([]types.Action, len(b.actions))
	copy(actions, b.actions)
	return &types.TableAction{Actions: actions}
}
