package receipt

// Block kinds
const (
	BlockText      = "text"
	BlockSeparator = "separator"
	BlockFeed      = "feed"
	BlockTable     = "table"
	BlockImage     = "image"
	BlockBarcode   = "barcode"
)

// Row kinds inside a table block
const (
	RowCells     = "row"
	RowSeparator = "separator"
	RowFeed      = "feed"
)

// Document is an ordered list of receipt blocks.
type Document struct {
	Blocks []Block `toml:"blocks" yaml:"blocks"`
}

// Block is one receipt element. Which fields apply depends on Type.
type Block struct {
	Type string `toml:"type" yaml:"type"`

	// text
	Content string `toml:"content,omitempty" yaml:"content,omitempty"`
	Align   string `toml:"align,omitempty" yaml:"align,omitempty"`
	Size    string `toml:"size,omitempty" yaml:"size,omitempty"`
	Wrap    bool   `toml:"wrap,omitempty" yaml:"wrap,omitempty"`

	// separator
	Char string `toml:"char,omitempty" yaml:"char,omitempty"`

	// feed, defaults to 1
	Count int `toml:"count,omitempty" yaml:"count,omitempty"`

	// table
	Rows []Row `toml:"rows,omitempty" yaml:"rows,omitempty"`

	// image
	Path  string `toml:"path,omitempty" yaml:"path,omitempty"`
	Label string `toml:"label,omitempty" yaml:"label,omitempty"`
	Scale string `toml:"scale,omitempty" yaml:"scale,omitempty"`

	// barcode; Height and Width fall back to the barcode defaults
	Data   string `toml:"data,omitempty" yaml:"data,omitempty"`
	HRI    string `toml:"hri,omitempty" yaml:"hri,omitempty"`
	Height int    `toml:"height,omitempty" yaml:"height,omitempty"`
	Width  int    `toml:"width,omitempty" yaml:"width,omitempty"`
}

// Row is one entry of a table: a row of cells, a separator or a feed.
type Row struct {
	Type  string `toml:"type,omitempty" yaml:"type,omitempty"`
	Count int    `toml:"count,omitempty" yaml:"count,omitempty"`
	Cells []Cell `toml:"cells,omitempty" yaml:"cells,omitempty"`
}

// Cell is one table column. A zero Width makes the cell flexible.
type Cell struct {
	Content string `toml:"content" yaml:"content"`
	Width   int    `toml:"width,omitempty" yaml:"width,omitempty"`
	Align   string `toml:"align,omitempty" yaml:"align,omitempty"`
	VAlign  string `toml:"valign,omitempty" yaml:"valign,omitempty"`
	Wrap    bool   `toml:"wrap,omitempty" yaml:"wrap,omitempty"`
}

func (r Row) kind() string {
	if r.Type == "" {
		return RowCells
	}
	return r.Type
}

func countOrOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
