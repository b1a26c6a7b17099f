package printer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	perrors "github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/printer"
	"github.com/accntech/sharprinter/pkg/table"
	"github.com/accntech/sharprinter/pkg/testutil"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var nop = zerolog.Nop()

func newContext(t *testing.T, width int, b types.Backend) *printer.Context {
	t.Helper()
	cfg := types.DefaultPrinterConfig()
	cfg.PageWidth = width
	cfg.Model = "TM-T20"
	cfg.ConnectionAddress = "COM3"
	ctx, err := printer.New(printer.Options{Config: cfg, Backend: b, Logger: &nop})
	require.NoError(t, err)
	return ctx
}

func textLines(t *testing.T, a types.Action) []string {
	t.Helper()
	text, ok := a.(*types.TextAction)
	require.True(t, ok, "expected text action, got %s", a.Kind())
	return text.Lines
}

func TestNew_RejectsPageWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		cfg := types.DefaultPrinterConfig()
		cfg.PageWidth = width
		_, err := printer.New(printer.Options{Config: cfg, Logger: &nop})
		require.Error(t, err)
		assert.True(t, perrors.IsErrorCode(err, perrors.ErrConfigValid))
		assert.Equal(t, "page width", perrors.GetErrorDetails(err)["parameter"])
	}
}

func TestNew_DefaultsSeparator(t *testing.T) {
	cfg := types.PrinterConfig{PageWidth: 4}
	ctx, err := printer.New(printer.Options{Config: cfg, Logger: &nop})
	require.NoError(t, err)
	assert.Equal(t, '-', ctx.Config().Separator)
}

func TestAddText(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		content string
		cfg     []types.TextConfig
		want    []string
	}{
		{
			name:    "truncate without wrap",
			width:   5,
			content: "HelloWorldExtra",
			want:    []string{"Hello"},
		},
		{
			name:    "right aligned",
			width:   10,
			content: "Total",
			cfg:     []types.TextConfig{{Align: types.AlignRight}},
			want:    []string{"     Total"},
		},
		{
			name:    "wrapped",
			width:   10,
			content: "The quick brown fox jumps",
			cfg:     []types.TextConfig{{Wrap: true}},
			want:    []string{"The quick ", "brown fox ", "jumps     "},
		},
		{
			name:    "large text uses half the page",
			width:   20,
			content: "HELLO",
			cfg:     []types.TextConfig{{Align: types.AlignCenter, Size: types.SizeLarge}},
			want:    []string{"  HELLO   "},
		},
		{
			name:    "newlines become spaces",
			width:   8,
			content: "a\r\nb\nc",
			want:    []string{"a b c   "},
		},
		{
			name:    "empty content is one blank line",
			width:   4,
			content: "",
			want:    []string{"    "},
		},
		{
			name:    "whitespace only with wrap is one blank line",
			width:   4,
			content: "   ",
			cfg:     []types.TextConfig{{Wrap: true}},
			want:    []string{"    "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, tt.width, nil).AddText(tt.content, tt.cfg...)
			require.NoError(t, ctx.Err())

			actions := ctx.Actions()
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, textLines(t, actions[0]))
		})
	}
}

func TestAddSeparator(t *testing.T) {
	ctx := newContext(t, 32, nil).AddSeparator().AddSeparator('=')
	require.NoError(t, ctx.Err())

	actions := ctx.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, strings.Repeat("-", 32), actions[0].(*types.SeparatorAction).Line)
	assert.Equal(t, strings.Repeat("=", 32), actions[1].(*types.SeparatorAction).Line)
}

func TestBuilder_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(*printer.Context) *printer.Context
		param string
	}{
		{"newline separator", func(c *printer.Context) *printer.Context { return c.AddSeparator('\n') }, "separator"},
		{"carriage return separator", func(c *printer.Context) *printer.Context { return c.AddSeparator('\r') }, "separator"},
		{"zero feed", func(c *printer.Context) *printer.Context { return c.FeedLine(0) }, "feed count"},
		{"negative feed", func(c *printer.Context) *printer.Context { return c.FeedLine(-2) }, "feed count"},
		{"empty image path", func(c *printer.Context) *printer.Context { return c.AddImage("") }, "image path"},
		{"empty barcode", func(c *printer.Context) *printer.Context { return c.AddBarcode("") }, "barcode data"},
		{"nil table builder", func(c *printer.Context) *printer.Context { return c.AddTable(nil) }, "table builder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.build(newContext(t, 32, nil).AddText("before"))

			err := ctx.Err()
			require.Error(t, err)
			assert.True(t, perrors.IsErrorCode(err, perrors.ErrConfigValid))
			assert.Equal(t, tt.param, perrors.GetErrorDetails(err)["parameter"])
			assert.Contains(t, err.Error(), tt.param)
			assert.Len(t, ctx.Actions(), 1, "rejected call must not queue an action")
		})
	}
}

func TestBuilder_ErrorIsSticky(t *testing.T) {
	ctx := newContext(t, 32, nil).
		FeedLine(0).
		AddText("ignored").
		AddSeparator('\n')

	assert.Empty(t, ctx.Actions())
	assert.Equal(t, "feed count", perrors.GetErrorDetails(ctx.Err())["parameter"])

	_, err := ctx.Execute(context.Background())
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrConfigValid))
}

func TestAddTable_MergesInPlace(t *testing.T) {
	ctx := newContext(t, 20, nil).
		AddText("HEAD").
		AddTable(func(tb *table.Builder) {
			tb.AddRow(layout.NewCell("Item"), layout.NewCell("Total").Align(types.AlignRight)).
				AddSeparator().
				FeedLine()
		}).
		AddText("TAIL")
	require.NoError(t, ctx.Err())

	actions := ctx.Actions()
	require.Len(t, actions, 5)
	assert.Equal(t, []string{"HEAD" + strings.Repeat(" ", 16)}, textLines(t, actions[0]))
	assert.Equal(t, []string{"Item           Total"}, textLines(t, actions[1]))
	assert.Equal(t, strings.Repeat("-", 20), actions[2].(*types.SeparatorAction).Line)
	assert.Equal(t, types.KindFeed, actions[3].Kind())
	assert.Equal(t, []string{"TAIL" + strings.Repeat(" ", 16)}, textLines(t, actions[4]))
}

func TestTable_Create(t *testing.T) {
	ctx := newContext(t, 10, nil)
	back := ctx.Table().
		AddRow(layout.NewCell("A").Width(4), layout.NewCell("B").Align(types.AlignRight)).
		FeedLine(2).
		Create()

	assert.Same(t, ctx, back)
	actions := ctx.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, []string{"A        B"}, textLines(t, actions[0]))
	assert.Equal(t, 2, actions[1].(*types.FeedAction).Count)
}

func TestTable_CreateMergesOnce(t *testing.T) {
	ctx := newContext(t, 10, nil)
	tb := ctx.Table().AddRow(layout.NewCell("A")).AddSeparator()

	tb.Create()
	tb.Create()

	require.NoError(t, ctx.Err())
	assert.Len(t, ctx.Actions(), 2)
}

func TestAddImageAndBarcode_Defaults(t *testing.T) {
	ctx := newContext(t, 32, nil).AddImage("logo.png").AddBarcode("4006381333931")
	require.NoError(t, ctx.Err())

	actions := ctx.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, types.ImageConfig{Scale: types.ScaleFit}, actions[0].(*types.ImageAction).Config)
	assert.Equal(t, types.DefaultBarcodeConfig(), actions[1].(*types.BarcodeAction).Config)
}

func TestLaterDeclarationsDoNotChangeEarlierOutput(t *testing.T) {
	ctx := newContext(t, 12, nil).AddText("first", types.TextConfig{Align: types.AlignCenter})
	before := append([]string(nil), textLines(t, ctx.Actions()[0])...)

	ctx.AddText("second", types.TextConfig{Align: types.AlignRight, Size: types.SizeLarge}).
		AddSeparator('*').
		AddText("third", types.TextConfig{Wrap: true})

	assert.Equal(t, before, textLines(t, ctx.Actions()[0]))
}

func TestActions_ReturnsCopy(t *testing.T) {
	ctx := newContext(t, 8, nil).AddText("x")
	actions := ctx.Actions()
	actions[0] = &types.FeedAction{Count: 1}

	assert.Equal(t, types.KindText, ctx.Actions()[0].Kind())
}

func TestExecute_FIFO(t *testing.T) {
	m := &testutil.MockBackend{}
	m.ExpectLifecycle("TM-T20", "COM3")
	m.On("EmitTextLine", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.On("FeedLines", 1).Return(nil).Once()
	m.On("EmitBarcode", "123", types.DefaultBarcodeConfig()).Return(nil).Once()

	ctx := newContext(t, 6, m).
		AddText("one").
		AddSeparator().
		FeedLine(1).
		AddBarcode("123").
		AddText("two", types.TextConfig{Align: types.AlignRight})

	report, err := ctx.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.Executed())
	assert.Equal(t, []string{"one   ", "------", "   two"}, m.EmittedLines())

	var order []string
	for _, c := range m.Calls {
		order = append(order, c.Method)
	}
	assert.Equal(t, []string{
		"Initialize", "OpenConnection",
		"EmitTextLine", "EmitTextLine", "FeedLines", "EmitBarcode", "EmitTextLine",
		"Release", "CloseConnection",
	}, order)
	m.AssertExpectations(t)
}

func TestExecute_OnlyOnce(t *testing.T) {
	m := &testutil.MockBackend{}
	m.ExpectLifecycle("TM-T20", "COM3")

	ctx := newContext(t, 8, m)
	_, err := ctx.Execute(context.Background())
	require.NoError(t, err)

	_, err = ctx.Execute(context.Background())
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrAlreadyExecuted))
	m.AssertExpectations(t)
}

func TestExecuteAsync_Cancelled(t *testing.T) {
	m := &testutil.MockBackend{}
	m.ExpectLifecycle("TM-T20", "COM3")

	run, cancel := context.WithCancel(context.Background())
	cancel()

	ctx := newContext(t, 8, m).AddText("never").FeedLine(1)
	outcome := <-ctx.ExecuteAsync(run)

	require.Error(t, outcome.Err)
	assert.True(t, errors.Is(outcome.Err, context.Canceled))
	assert.True(t, outcome.Report.Cancelled)
	assert.Equal(t, 0, outcome.Report.Executed())
	m.AssertNotCalled(t, "EmitTextLine", mock.Anything, mock.Anything, mock.Anything)
	m.AssertExpectations(t)
}

func TestExecute_DryRun(t *testing.T) {
	m := &testutil.MockBackend{}
	cfg := types.DefaultPrinterConfig()
	ctx, err := printer.New(printer.Options{Config: cfg, Backend: m, DryRun: true, Logger: &nop})
	require.NoError(t, err)

	report, err := ctx.AddText("hi").Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Skipped)
	assert.Empty(t, m.Calls)
}
