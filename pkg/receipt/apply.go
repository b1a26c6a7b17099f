package receipt

import (
	"unicode/utf8"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/layout"
	"github.com/accntech/sharprinter/pkg/printer"
	"github.com/accntech/sharprinter/pkg/types"
)

// Apply queues every block of doc on ctx in document order. Builder
// validation still applies; an invalid block stops the replay and is
// reported with its index.
func Apply(doc *Document, ctx *printer.Context) error {
	for i, b := range doc.Blocks {
		if err := applyBlock(b, ctx); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentInvalid, "block %d (%s)", i, b.Type).
				WithDetail("block", i).
				WithDetail("type", b.Type)
		}
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentInvalid, "block %d (%s)", i, b.Type).
				WithDetail("block", i).
				WithDetail("type", b.Type)
		}
	}
	return nil
}

func applyBlock(b Block, ctx *printer.Context) error {
	switch b.Type {
	case BlockText:
		cfg, err := textConfig(b)
		if err != nil {
			return err
		}
		ctx.AddText(b.Content, cfg)

	case BlockSeparator:
		if b.Char == "" {
			ctx.AddSeparator()
			return nil
		}
		r, err := singleRune(b.Char)
		if err != nil {
			return err
		}
		ctx.AddSeparator(r)

	case BlockFeed:
		ctx.FeedLine(countOrOne(b.Count))

	case BlockTable:
		tb := ctx.Table()
		for _, row := range b.Rows {
			switch row.kind() {
			case RowCells:
				cells, err := tableCells(row.Cells)
				if err != nil {
					return err
				}
				tb.AddRow(cells...)
			case RowSeparator:
				tb.AddSeparator()
			case RowFeed:
				tb.FeedLine(countOrOne(row.Count))
			default:
				return errors.Newf(errors.ErrDocumentInvalid, "unknown table row type %q", row.Type)
			}
		}
		tb.Create()

	case BlockImage:
		scale, err := types.ParseScaleMode(b.Scale)
		if err != nil {
			return err
		}
		ctx.AddImage(b.Path, types.ImageConfig{Label: b.Label, Scale: scale})

	case BlockBarcode:
		cfg, err := barcodeConfig(b)
		if err != nil {
			return err
		}
		ctx.AddBarcode(b.Data, cfg)

	default:
		return errors.Newf(errors.ErrDocumentInvalid, "unknown block type %q", b.Type)
	}
	return nil
}

func textConfig(b Block) (types.TextConfig, error) {
	align, err := types.ParseHAlign(b.Align)
	if err != nil {
		return types.TextConfig{}, err
	}
	size, err := types.ParseTextSize(b.Size)
	if err != nil {
		return types.TextConfig{}, err
	}
	return types.TextConfig{Align: align, Wrap: b.Wrap, Size: size}, nil
}

func barcodeConfig(b Block) (types.BarcodeConfig, error) {
	cfg := types.DefaultBarcodeConfig()
	if b.Height > 0 {
		cfg.Height = b.Height
	}
	if b.Width > 0 {
		cfg.Width = b.Width
	}
	if b.Align != "" {
		align, err := types.ParseHAlign(b.Align)
		if err != nil {
			return cfg, err
		}
		cfg.Align = align
	}
	hri, err := types.ParseHRIPosition(b.HRI)
	if err != nil {
		return cfg, err
	}
	cfg.HRI = hri
	return cfg, nil
}

func tableCells(specs []Cell) ([]layout.Cell, error) {
	cells := make([]layout.Cell, 0, len(specs))
	for _, spec := range specs {
		align, err := types.ParseHAlign(spec.Align)
		if err != nil {
			return nil, err
		}
		valign, err := types.ParseVAlign(spec.VAlign)
		if err != nil {
			return nil, err
		}

		cell := layout.NewCell(spec.Content).Align(align).VAlign(valign).Wrap(spec.Wrap)
		if spec.Width > 0 {
			cell = cell.Width(spec.Width)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.Newf(errors.ErrDocumentInvalid, "separator char must be a single character, got %q", s)
	}
	return r, nil
}
