package backend_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accntech/sharprinter/pkg/backend"
	perrors "github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/printer"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/accntech/sharprinter/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nop = zerolog.Nop()

func receipt(t *testing.T, cfg types.PrinterConfig, b types.Backend) *printer.Context {
	t.Helper()
	ctx, err := printer.New(printer.Options{Config: cfg, Backend: b, Logger: &nop})
	require.NoError(t, err)
	return ctx.
		AddText("SHOP", types.TextConfig{Align: types.AlignCenter}).
		AddSeparator().
		FeedLine(1)
}

func TestNew_Registry(t *testing.T) {
	assert.Equal(t, []string{"console", "file", "recorder"}, backend.Names())

	for _, name := range backend.Names() {
		b, err := backend.New(name, backend.Options{Output: &bytes.Buffer{}, Logger: &nop})
		require.NoError(t, err, name)
		assert.NotNil(t, b)
	}

	_, err := backend.New("escpos", backend.Options{})
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrBackendUnknown))
	assert.Equal(t, "escpos", perrors.GetErrorDetails(err)["backend"])
}

func TestRegister(t *testing.T) {
	err := backend.Register("console", func(backend.Options) (types.Backend, error) { return nil, nil })
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrInvalidInput))

	err = backend.Register("", func(backend.Options) (types.Backend, error) { return nil, nil })
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrInvalidInput))
}

func TestConsole_StreamsPlainText(t *testing.T) {
	var out bytes.Buffer
	cfg := types.DefaultPrinterConfig()
	cfg.PageWidth = 8
	cfg.CutAfterPrint = true
	cfg.CutDistance = 0

	b := backend.NewConsole(backend.Options{Output: &out, Format: ui.FormatText, PageWidth: 8, Logger: &nop})
	_, err := receipt(t, cfg, b).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"  SHOP  ",
		"--------",
		"        ",
		"8<------",
	}, "\n")+"\n", out.String())
}

func TestConsole_Framed(t *testing.T) {
	var out bytes.Buffer
	cfg := types.DefaultPrinterConfig()
	cfg.PageWidth = 8

	b := backend.NewConsole(backend.Options{Output: &out, Format: ui.FormatTerminal, PageWidth: 8, Logger: &nop})
	_, err := receipt(t, cfg, b).Execute(context.Background())
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "╭")
	assert.Contains(t, rendered, "╯")
	assert.Contains(t, rendered, "SHOP")
	assert.Contains(t, rendered, "--------")
}

func TestFile_WritesOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "receipt.txt")
	cfg := types.DefaultPrinterConfig()
	cfg.PageWidth = 8
	cfg.ConnectionAddress = path
	cfg.ConnectionSpeed = 9600

	b := backend.NewFile(backend.Options{PageWidth: 8, Logger: &nop})
	_, err := receipt(t, cfg, b).AddBarcode("42", types.BarcodeConfig{Width: 1, Height: 9, HRI: types.HRINone}).
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, b.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "  SHOP  \n--------\n        \n[barcode\n", string(data))
}

func TestFile_RequiresPath(t *testing.T) {
	b := backend.NewFile(backend.Options{Logger: &nop})
	err := b.OpenConnection(",9600")
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	rec := backend.NewRecorder()
	cfg := types.DefaultPrinterConfig()
	cfg.Model = "TM-T88"
	cfg.PageWidth = 6
	cfg.OpenDrawerAfterPrint = true

	_, err := receipt(t, cfg, rec).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Initialize", "OpenConnection",
		"EmitTextLine", "EmitTextLine", "FeedLines",
		"OpenCashDrawer",
		"Release", "CloseConnection",
	}, rec.Ops())
	assert.Equal(t, []string{" SHOP ", "------"}, rec.Lines())
	assert.Equal(t, []interface{}{"TM-T88"}, rec.Calls[0].Args)
}

func TestRecorder_FailureStillCleansUp(t *testing.T) {
	rec := backend.NewRecorder().Fail("FeedLines", errors.New("paper jam"))
	cfg := types.DefaultPrinterConfig()

	report, err := receipt(t, cfg, rec).AddText("never").Execute(context.Background())
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrBackendEmit))
	assert.Equal(t, 2, report.Executed())

	ops := rec.Ops()
	assert.Equal(t, []string{"Release", "CloseConnection"}, ops[len(ops)-2:])
	assert.Len(t, rec.Lines(), 2)
}
