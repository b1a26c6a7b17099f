package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/accntech/sharprinter/pkg/ui"
)

// Config is the complete application configuration.
type Config struct {
	Printer Printer `koanf:"printer" toml:"printer"`
	Output  Output  `koanf:"output" toml:"output"`
}

// Printer describes the receipt printer and its paper.
type Printer struct {
	Model         string     `koanf:"model" toml:"model"`
	PageWidth     int        `koanf:"page_width" toml:"page_width"`
	Separator     string     `koanf:"separator" toml:"separator"`
	CutAfterPrint bool       `koanf:"cut_after_print" toml:"cut_after_print"`
	CutDistance   int        `koanf:"cut_distance" toml:"cut_distance"`
	Connection    Connection `koanf:"connection" toml:"connection"`
	Drawer        Drawer     `koanf:"drawer" toml:"drawer"`
}

// Connection holds the opaque connection parameters.
type Connection struct {
	Address string `koanf:"address" toml:"address"`
	Speed   int    `koanf:"speed" toml:"speed"`
}

// Drawer configures the cash drawer kick.
type Drawer struct {
	OpenAfterPrint bool `koanf:"open_after_print" toml:"open_after_print"`
	Pin            int  `koanf:"pin" toml:"pin"`
	OnMs           int  `koanf:"on_ms" toml:"on_ms"`
	OffMs          int  `koanf:"off_ms" toml:"off_ms"`
}

// Output selects the backend and how job reports are shown.
type Output struct {
	Backend string `koanf:"backend" toml:"backend"`
	// Path is the target of the file backend. It takes precedence over
	// printer.connection.address.
	Path   string `koanf:"path" toml:"path"`
	Format string `koanf:"format" toml:"format"`
}

// Validate checks values that the builder and backends rely on.
func (c *Config) Validate() error {
	p := c.Printer
	switch {
	case p.PageWidth <= 0:
		return invalid("printer.page_width", "must be positive, got %d", p.PageWidth)
	case utf8.RuneCountInString(p.Separator) != 1:
		return invalid("printer.separator", "must be a single character, got %q", p.Separator)
	case p.Separator == "\n" || p.Separator == "\r":
		return invalid("printer.separator", "line break cannot be repeated")
	case p.CutDistance < 0:
		return invalid("printer.cut_distance", "must not be negative, got %d", p.CutDistance)
	case p.Connection.Speed < 0:
		return invalid("printer.connection.speed", "must not be negative, got %d", p.Connection.Speed)
	case p.Drawer.Pin != int(types.DrawerPin2) && p.Drawer.Pin != int(types.DrawerPin5):
		return invalid("printer.drawer.pin", "must be 2 or 5, got %d", p.Drawer.Pin)
	case p.Drawer.OnMs < 0 || p.Drawer.OffMs < 0:
		return invalid("printer.drawer", "pulse durations must not be negative")
	}

	if c.Output.Backend == "" {
		return invalid("output.backend", "must not be empty")
	}
	if c.Output.Backend == "file" && c.Output.Path == "" && p.Connection.Address == "" {
		return invalid("output.path", "the file backend needs output.path or printer.connection.address")
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return invalid("output.format", "%v", err)
	}
	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Wrapf(fmt.Errorf(format, args...), errors.ErrConfigValid, "invalid configuration value %s", key).
		WithDetail("key", key)
}

// PrinterConfig converts the configuration into the job settings.
func (c *Config) PrinterConfig() types.PrinterConfig {
	p := c.Printer
	cfg := types.PrinterConfig{
		Model:                p.Model,
		PageWidth:            p.PageWidth,
		ConnectionAddress:    p.Connection.Address,
		ConnectionSpeed:      p.Connection.Speed,
		CutAfterPrint:        p.CutAfterPrint,
		OpenDrawerAfterPrint: p.Drawer.OpenAfterPrint,
		CutDistance:          p.CutDistance,
		DrawerPin:            types.DrawerPin(p.Drawer.Pin),
		DrawerOnMs:           p.Drawer.OnMs,
		DrawerOffMs:          p.Drawer.OffMs,
	}
	if r, _ := utf8.DecodeRuneInString(p.Separator); r != utf8.RuneError {
		cfg.Separator = r
	}
	if c.Output.Backend == "file" && c.Output.Path != "" {
		cfg.ConnectionAddress = c.Output.Path
	}
	return cfg
}

// Format returns the parsed report format, auto when unset or invalid.
func (c *Config) Format() ui.Format {
	f, _ := ui.ParseFormat(c.Output.Format)
	return f
}
