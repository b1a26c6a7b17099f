package receipt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/printer"
	"github.com/accntech/sharprinter/pkg/receipt"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlReceipt = `
[[blocks]]
type = "text"
content = "ACME"
align = "center"

[[blocks]]
type = "separator"
char = "="

[[blocks]]
type = "table"

  [[blocks.rows]]
    [[blocks.rows.cells]]
    content = "Tea"

    [[blocks.rows.cells]]
    content = "3.20"
    width = 6
    align = "right"

  [[blocks.rows]]
  type = "separator"

  [[blocks.rows]]
  type = "feed"
  count = 2

[[blocks]]
type = "barcode"
data = "123"
hri = "above"

[[blocks]]
type = "image"
path = "logo.png"
label = "Thanks"
scale = "fill"

[[blocks]]
type = "feed"
`

const yamlReceipt = `
blocks:
  - type: text
    content: ACME
    align: center
  - type: separator
    char: "="
  - type: table
    rows:
      - cells:
          - content: Tea
          - content: "3.20"
            width: 6
            align: right
      - type: separator
      - type: feed
        count: 2
  - type: barcode
    data: "123"
    hri: above
  - type: image
    path: logo.png
    label: Thanks
    scale: fill
  - type: feed
`

const xmlReceipt = `<?xml version="1.0"?>
<receipt>
  <text align="center">ACME</text>
  <separator char="="/>
  <table>
    <row>
      <cell>Tea</cell>
      <cell width="6" align="right">3.20</cell>
    </row>
    <separator/>
    <feed count="2"/>
  </table>
  <barcode hri="above">123</barcode>
  <image path="logo.png" label="Thanks" scale="fill"/>
  <feed/>
</receipt>
`

func TestParse_FormatsAgree(t *testing.T) {
	fromTOML, err := receipt.Parse([]byte(tomlReceipt), receipt.FormatTOML)
	require.NoError(t, err)
	fromYAML, err := receipt.Parse([]byte(yamlReceipt), receipt.FormatYAML)
	require.NoError(t, err)
	fromXML, err := receipt.Parse([]byte(xmlReceipt), receipt.FormatXML)
	require.NoError(t, err)

	require.Len(t, fromTOML.Blocks, 6)
	assert.Equal(t, fromTOML, fromYAML)
	assert.Equal(t, fromTOML, fromXML)

	table := fromTOML.Blocks[2]
	require.Len(t, table.Rows, 3)
	assert.Equal(t, 6, table.Rows[0].Cells[1].Width)
	assert.Equal(t, receipt.RowFeed, table.Rows[2].Type)
}

func TestApply(t *testing.T) {
	doc, err := receipt.Parse([]byte(tomlReceipt), receipt.FormatTOML)
	require.NoError(t, err)

	cfg := types.DefaultPrinterConfig()
	cfg.PageWidth = 16
	nop := zerolog.Nop()
	ctx, err := printer.New(printer.Options{Config: cfg, Logger: &nop})
	require.NoError(t, err)

	require.NoError(t, receipt.Apply(doc, ctx))

	actions := ctx.Actions()
	kinds := make([]types.ActionKind, len(actions))
	for i, a := range actions {
		kinds[i] = a.Kind()
	}
	assert.Equal(t, []types.ActionKind{
		types.KindText, types.KindSeparator,
		types.KindText, types.KindSeparator, types.KindFeed,
		types.KindBarcode, types.KindImage, types.KindFeed,
	}, kinds)

	assert.Equal(t, []string{"      ACME      "}, actions[0].(*types.TextAction).Lines)
	assert.Equal(t, strings.Repeat("=", 16), actions[1].(*types.SeparatorAction).Line)
	assert.Equal(t, []string{"Tea         3.20"}, actions[2].(*types.TextAction).Lines)
	assert.Equal(t, strings.Repeat("-", 16), actions[3].(*types.SeparatorAction).Line)
	assert.Equal(t, 2, actions[4].(*types.FeedAction).Count)

	barcode := actions[5].(*types.BarcodeAction)
	assert.Equal(t, "123", barcode.Data)
	assert.Equal(t, types.BarcodeConfig{Height: 80, Width: 2, Align: types.AlignCenter, HRI: types.HRIAbove}, barcode.Config)

	image := actions[6].(*types.ImageAction)
	assert.Equal(t, types.ImageConfig{Label: "Thanks", Scale: types.ScaleFill}, image.Config)
	assert.Equal(t, 1, actions[7].(*types.FeedAction).Count)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   receipt.Document
		block int
	}{
		{"unknown block", receipt.Document{Blocks: []receipt.Block{{Type: "qr"}}}, 0},
		{"bad align", receipt.Document{Blocks: []receipt.Block{{Type: "text"}, {Type: "text", Align: "justify"}}}, 1},
		{"multi rune separator", receipt.Document{Blocks: []receipt.Block{{Type: "separator", Char: "=="}}}, 0},
		{"negative feed", receipt.Document{Blocks: []receipt.Block{{Type: "feed", Count: -1}}}, 0},
		{"empty image", receipt.Document{Blocks: []receipt.Block{{Type: "image"}}}, 0},
		{"bad row type", receipt.Document{Blocks: []receipt.Block{{Type: "table", Rows: []receipt.Row{{Type: "header"}}}}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nop := zerolog.Nop()
			ctx, err := printer.New(printer.Options{Config: types.DefaultPrinterConfig(), Logger: &nop})
			require.NoError(t, err)

			err = receipt.Apply(&tt.doc, ctx)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentInvalid))
			assert.Equal(t, tt.block, errors.GetErrorDetails(err)["block"])
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format receipt.Format
	}{
		{"broken toml", "[[blocks]\ntype =", receipt.FormatTOML},
		{"unknown yaml field", "blocks:\n  - type: text\n    colour: red\n", receipt.FormatYAML},
		{"wrong xml root", "<ticket/>", receipt.FormatXML},
		{"bad xml number", `<receipt><feed count="two"/></receipt>`, receipt.FormatXML},
		{"bad xml bool", `<receipt><text wrap="maybe">x</text></receipt>`, receipt.FormatXML},
		{"unknown format", "", receipt.Format("json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := receipt.Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse), "got %v", err)
		})
	}

	_, err := receipt.Parse([]byte(`<receipt><qr/></receipt>`), receipt.FormatXML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentInvalid))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlReceipt), 0644))

	doc, err := receipt.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 6)

	_, err = receipt.Load(filepath.Join(dir, "receipt.txt"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))

	_, err = receipt.Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, filepath.Join(dir, "missing.toml"), errors.GetErrorDetails(err)["path"])

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[[blocks]\ntype ="), 0644))
	_, err = receipt.Load(broken)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
	assert.Equal(t, broken, errors.GetErrorDetails(err)["path"])
}
