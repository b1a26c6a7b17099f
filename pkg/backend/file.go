package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/accntech/sharprinter/pkg/types"
	"github.com/rs/zerolog"
)

// File writes the receipt as plain text. The connection string names the
// target file; anything after a comma (a port speed) is ignored. The file
// is written in one piece when the connection closes.
type File struct {
	path   string
	page   *sheet
	logger zerolog.Logger
}

var _ types.Backend = (*File)(nil)

// NewFile creates a file backend.
func NewFile(opts Options) *File {
	return &File{
		page:   newSheet(opts.PageWidth),
		logger: opts.logger("file"),
	}
}

// Path returns the file the backend writes to, empty before OpenConnection.
func (f *File) Path() string { return f.path }

func (f *File) Initialize(model string) error {
	f.page.reset()
	return nil
}

func (f *File) OpenConnection(conn string) error {
	path, _, _ := strings.Cut(conn, ",")
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("file backend needs a path as connection address")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f.path = path
	f.logger.Debug().Str("path", path).Msg("File backend opened")
	return nil
}

func (f *File) CloseConnection() error {
	if f.path == "" {
		return nil
	}

	var b strings.Builder
	for _, line := range f.page.texts() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write receipt to %s: %w", f.path, err)
	}

	f.logger.Info().Str("path", f.path).Int("lines", len(f.page.lines)).Msg("Receipt written")
	f.page.reset()
	return nil
}

func (f *File) Release() error { return nil }

func (f *File) FeedLines(count int) error {
	f.page.feed(count)
	return nil
}

func (f *File) EmitTextLine(text string, align types.HAlign, size types.TextSize) error {
	f.page.text(text, align, size)
	return nil
}

func (f *File) EmitBarcode(data string, cfg types.BarcodeConfig) error {
	f.page.barcode(data, cfg)
	return nil
}

func (f *File) EmitImage(path, label string, scale types.ScaleMode) error {
	f.page.image(path, label, scale)
	return nil
}

func (f *File) CutPaper(distance int) error {
	f.page.cut(distance)
	return nil
}

func (f *File) OpenCashDrawer(pin types.DrawerPin, onMs, offMs int) error {
	f.page.drawer(pin, onMs, offMs)
	return nil
}
