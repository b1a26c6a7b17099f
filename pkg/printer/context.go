package printer

import (
	"context"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/executor"
	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/logging"
	"github.com/accntech/sharprinter/pkg/table"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a new Context.
type Options struct {
	Config  types.PrinterConfig
	Backend types.Backend
	DryRun  bool
	Logger  *zerolog.Logger
}

// Context is the action queue of one receipt.
//
// A Context is not safe for concurrent use. Builder calls must come from a
// single goroutine, and the queue must not be modified while it executes.
type Context struct {
	config   types.PrinterConfig
	backend  types.Backend
	dryRun   bool
	logger   zerolog.Logger
	actions  []types.Action
	err      error
	executed bool
}

// New creates an empty receipt context.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg.PageWidth <= 0 {
		return nil, errors.InvalidParameter("page width", "must be positive, got %d", cfg.PageWidth)
	}
	if cfg.Separator == 0 {
		cfg.Separator = types.DefaultPrinterConfig().Separator
	}
	if isLineBreak(cfg.Separator) {
		return nil, errors.InvalidParameter("separator", "line break %q cannot be repeated", cfg.Separator)
	}

	logger := logging.GetLogger("printer")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Context{
		config:  cfg,
		backend: opts.Backend,
		dryRun:  opts.DryRun,
		logger:  logger,
	}, nil
}

// Config returns the configuration the context renders for.
func (c *Context) Config() types.PrinterConfig { return c.config }

// Err returns the first configuration error raised by a builder call.
func (c *Context) Err() error { return c.err }

// Actions returns a copy of the queued actions.
func (c *Context) Actions() []types.Action {
	actions := make([]types.Action, len(c.actions))
	copy(actions, c.actions)
	return actions
}

// AddText lays out content for the page and queues it as one text action.
// Without a config the text is left aligned, normal size and truncated to
// the page width. Large text gets half the columns.
func (c *Context) AddText(content string, cfg ...types.TextConfig) *Context {
	if c.err != nil {
		return c
	}
	var tc types.TextConfig
	if len(cfg) > 0 {
		tc = cfg[0]
	}

	budget := c.config.PageWidth / tc.Size.WidthFactor()
	if budget < 1 {
		budget = 1
	}

	var lines []string
	if tc.Wrap {
		for _, line := range layout.Wrap(content, budget) {
			lines = append(lines, layout.FormatLine(line, budget, tc.Align))
		}
	} else if text := layout.Sanitize(content); text != "" {
		lines = append(lines, layout.Fit(text, budget, tc.Align))
	}
	if len(lines) == 0 {
		lines = []string{layout.Blank(budget)}
	}

	return c.push(&types.TextAction{Lines: lines, Align: tc.Align, Size: tc.Size})
}

// AddSeparator queues a full width line of char, or of the configured
// separator when char is omitted.
func (c *Context) AddSeparator(char ...rune) *Context {
	if c.err != nil {
		return c
	}
	r := c.config.Separator
	if len(char) > 0 {
		r = char[0]
	}
	if isLineBreak(r) {
		return c.fail(errors.InvalidParameter("separator", "line break %q cannot be repeated", r))
	}
	return c.push(&types.SeparatorAction{Line: layout.Repeat(r, c.config.PageWidth)})
}

// FeedLine queues n blank lines.
func (c *Context) FeedLine(n int) *Context {
	if c.err != nil {
		return c
	}
	if n < 1 {
		return c.fail(errors.InvalidParameter("feed count", "must be at least 1, got %d", n))
	}
	return c.push(&types.FeedAction{Count: n})
}

// AddTable runs fn against a fresh table builder and merges the table's
// actions into the queue at the current position.
func (c *Context) AddTable(fn func(*table.Builder)) *Context {
	if c.err != nil {
		return c
	}
	if fn == nil {
		return c.fail(errors.InvalidParameter("table builder", "must not be nil"))
	}
	b := table.New(c.config.PageWidth, c.config.Separator)
	fn(b)
	return c.merge(b.Build())
}

// Table starts a table that is merged into the queue by Create.
func (c *Context) Table() *TableBuilder {
	return &TableBuilder{builder: table.New(c.config.PageWidth, c.config.Separator), ctx: c}
}

// AddImage queues an image. The path is handed to the backend unchanged.
func (c *Context) AddImage(path string, cfg ...types.ImageConfig) *Context {
	if c.err != nil {
		return c
	}
	if path == "" {
		return c.fail(errors.InvalidParameter("image path", "must not be empty"))
	}
	ic := types.ImageConfig{Scale: types.ScaleFit}
	if len(cfg) > 0 {
		ic = cfg[0]
	}
	return c.push(&types.ImageAction{Path: path, Config: ic})
}

// AddBarcode queues a barcode for data.
func (c *Context) AddBarcode(data string, cfg ...types.BarcodeConfig) *Context {
	if c.err != nil {
		return c
	}
	if data == "" {
		return c.fail(errors.InvalidParameter("barcode data", "must not be empty"))
	}
	bc := types.DefaultBarcodeConfig()
	if len(cfg) > 0 {
		bc = cfg[0]
	}
	return c.push(&types.BarcodeAction{Data: data, Config: bc})
}

// ExecuteAsync runs the queue on its own goroutine and delivers exactly one
// outcome on the returned channel. A context can be executed once.
func (c *Context) ExecuteAsync(ctx context.Context) <-chan executor.Outcome {
	out := make(chan executor.Outcome, 1)

	switch {
	case c.err != nil:
		out <- executor.Outcome{Err: c.err}
		close(out)
		return out
	case c.executed:
		out <- executor.Outcome{Err: errors.New(errors.ErrAlreadyExecuted, "receipt has already been executed")}
		close(out)
		return out
	}
	c.executed = true

	exec := executor.New(executor.Options{
		Backend: c.backend,
		Config:  c.config,
		DryRun:  c.dryRun,
		Logger:  &c.logger,
	})
	actions := c.Actions()

	go func() {
		defer close(out)
		report, err := exec.Run(ctx, actions)
		out <- executor.Outcome{Report: report, Err: err}
	}()
	return out
}

// Execute runs the queue and waits for it to finish.
func (c *Context) Execute(ctx context.Context) (*executor.Report, error) {
	outcome := <-c.ExecuteAsync(ctx)
	return outcome.Report, outcome.Err
}

func (c *Context) push(a types.Action) *Context {
	c.actions = append(c.actions, a)
	return c
}

func (c *Context) merge(t *types.TableAction) *Context {
	c.actions = append(c.actions, t.Actions...)
	return c
}

func (c *Context) fail(err *errors.PrinterError) *Context {
	c.logger.Warn().Err(err).Msg("Rejected builder call")
	c.err = err
	return c
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
