package backend

import (
	"fmt"
	"io"
	"strings"

	"github.com/accntech/sharprinter/pkg/types"
	"github.com/accntech/sharprinter/pkg/ui"
	"github.com/accntech/sharprinter/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Console previews a receipt on a writer. On a colour terminal the whole
// receipt is drawn inside a rounded frame when the job releases the
// backend; anywhere else each line is written as soon as it is emitted.
type Console struct {
	out    io.Writer
	format ui.Format
	framed bool
	page   *sheet
	logger zerolog.Logger
}

var _ types.Backend = (*Console)(nil)

// NewConsole creates a console backend.
func NewConsole(opts Options) *Console {
	return &Console{
		out:    opts.output(),
		format: opts.Format,
		page:   newSheet(opts.PageWidth),
		logger: opts.logger("console"),
	}
}

func (c *Console) Initialize(model string) error {
	c.framed = ui.Resolve(c.format, c.out) == ui.FormatTerminal
	c.page.reset()
	c.logger.Debug().Str("model", model).Bool("framed", c.framed).Msg("Console backend initialized")
	return nil
}

func (c *Console) OpenConnection(conn string) error {
	c.logger.Debug().Str("connection", conn).Msg("Console connection ignored")
	return nil
}

func (c *Console) CloseConnection() error { return nil }

// Release draws the framed receipt when output is framed.
func (c *Console) Release() error {
	if !c.framed || len(c.page.lines) == 0 {
		return nil
	}

	rendered := make([]string, len(c.page.lines))
	for i, line := range c.page.lines {
		rendered[i] = styleFor(line.Kind).Render(line.Text)
	}
	frame := styles.Get("Receipt").Render(strings.Join(rendered, "\n"))
	c.page.reset()

	_, err := fmt.Fprintln(c.out, frame)
	return err
}

func styleFor(kind LineKind) lipgloss.Style {
	switch kind {
	case LineLarge:
		return styles.Get("Large")
	case LinePlaceholder:
		return styles.Get("Placeholder")
	case LineHRI:
		return styles.Get("HRI")
	default:
		return styles.Get("Text")
	}
}

func (c *Console) FeedLines(count int) error {
	return c.emit(func() { c.page.feed(count) })
}

func (c *Console) EmitTextLine(text string, align types.HAlign, size types.TextSize) error {
	return c.emit(func() { c.page.text(text, align, size) })
}

func (c *Console) EmitBarcode(data string, cfg types.BarcodeConfig) error {
	return c.emit(func() { c.page.barcode(data, cfg) })
}

func (c *Console) EmitImage(path, label string, scale types.ScaleMode) error {
	return c.emit(func() { c.page.image(path, label, scale) })
}

func (c *Console) CutPaper(distance int) error {
	return c.emit(func() { c.page.cut(distance) })
}

func (c *Console) OpenCashDrawer(pin types.DrawerPin, onMs, offMs int) error {
	return c.emit(func() { c.page.drawer(pin, onMs, offMs) })
}

// emit draws onto the page and, when not framed, streams the new lines.
func (c *Console) emit(draw func()) error {
	start := len(c.page.lines)
	draw()
	if c.framed {
		return nil
	}

	for _, line := range c.page.lines[start:] {
		if _, err := fmt.Fprintln(c.out, line.Text); err != nil {
			return err
		}
	}
	c.page.reset()
	return nil
}
