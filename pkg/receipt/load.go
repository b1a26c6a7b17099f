package receipt

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrDocumentParse, "cannot tell the format of %s, use .toml, .yaml or .xml", path).
			WithDetail("path", path)
	}
}

// Load reads a document file, picking the decoder from its extension.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "failed to read %s", path).WithDetail("path", path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		errors.AddDetail(err, "path", path)
		return nil, err
	}
	return doc, nil
}

// Parse decodes a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatXML:
		return parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrDocumentParse, "unknown document format %q", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "failed to parse %s document", format)
	}
	return &doc, nil
}

func parseXML(data []byte) (*Document, error) {
	x := etree.NewDocument()
	if err := x.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse xml document")
	}

	root := x.Root()
	if root == nil || root.Tag != "receipt" {
		return nil, errors.New(errors.ErrDocumentParse, "xml document must have a <receipt> root element")
	}

	doc := &Document{}
	for _, el := range root.ChildElements() {
		block, err := xmlBlock(el)
		if err != nil {
			return nil, err
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc, nil
}

func xmlBlock(el *etree.Element) (Block, error) {
	b := Block{Type: el.Tag}
	var err error

	switch el.Tag {
	case BlockText:
		b.Content = strings.TrimSpace(el.Text())
		b.Align = el.SelectAttrValue("align", "")
		b.Size = el.SelectAttrValue("size", "")
		b.Wrap, err = boolAttr(el, "wrap")
	case BlockSeparator:
		b.Char = el.SelectAttrValue("char", "")
	case BlockFeed:
		b.Count, err = intAttr(el, "count")
	case BlockImage:
		b.Path = el.SelectAttrValue("path", "")
		b.Label = el.SelectAttrValue("label", "")
		b.Scale = el.SelectAttrValue("scale", "")
	case BlockBarcode:
		b.Data = strings.TrimSpace(el.Text())
		b.Align = el.SelectAttrValue("align", "")
		b.HRI = el.SelectAttrValue("hri", "")
		if b.Height, err = intAttr(el, "height"); err == nil {
			b.Width, err = intAttr(el, "width")
		}
	case BlockTable:
		for _, child := range el.ChildElements() {
			row, rerr := xmlRow(child)
			if rerr != nil {
				return b, rerr
			}
			b.Rows = append(b.Rows, row)
		}
	default:
		return b, errors.Newf(errors.ErrDocumentInvalid, "unknown element <%s>", el.Tag).WithDetail("element", el.Tag)
	}
	return b, err
}

func xmlRow(el *etree.Element) (Row, error) {
	var r Row
	switch el.Tag {
	case RowSeparator:
		r.Type = RowSeparator
		return r, nil
	case RowFeed:
		r.Type = RowFeed
		var err error
		r.Count, err = intAttr(el, "count")
		return r, err
	case RowCells:
	default:
		return r, errors.Newf(errors.ErrDocumentInvalid, "unknown table element <%s>", el.Tag).WithDetail("element", el.Tag)
	}

	for _, c := range el.SelectElements("cell") {
		cell := Cell{
			Content: strings.TrimSpace(c.Text()),
			Align:   c.SelectAttrValue("align", ""),
			VAlign:  c.SelectAttrValue("valign", ""),
		}
		var err error
		if cell.Width, err = intAttr(c, "width"); err != nil {
			return r, err
		}
		if cell.Wrap, err = boolAttr(c, "wrap"); err != nil {
			return r, err
		}
		r.Cells = append(r.Cells, cell)
	}
	return r, nil
}

func intAttr(el *etree.Element, name string) (int, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDocumentParse, "attribute %s of <%s> must be a number", name, el.Tag).
			WithDetail("attribute", name)
	}
	return n, nil
}

func boolAttr(el *etree.Element, name string) (bool, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrDocumentParse, "attribute %s of <%s> must be true or false", name, el.Tag).
			WithDetail("attribute", name)
	}
	return b, nil
}
