package printer

import (
	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/table"
)

// TableBuilder is a table bound to the context that created it.
type TableBuilder struct {
	builder *table.Builder
	ctx     *Context
	created bool
}

// AddRow lays out one row of cells.
func (t *TableBuilder) AddRow(cells ...layout.Cell) *TableBuilder {
	t.builder.AddRow(cells...)
	return t
}

// AddSeparator adds a full width separator line.
func (t *TableBuilder) AddSeparator() *TableBuilder {
	t.builder.AddSeparator()
	return t
}

// FeedLine adds n blank lines, one when omitted.
func (t *TableBuilder) FeedLine(n ...int) *TableBuilder {
	t.builder.FeedLine(n...)
	return t
}

// Create merges the table into the context queue and returns the context.
// Only the first call merges; later calls return the context unchanged.
func (t *TableBuilder) Create() *Context {
	if t.created || t.ctx.err != nil {
		return t.ctx
	}
	t.created = true
	return t.ctx.merge(t.builder.Build())
}
