package types

import "strconv"

// PrinterConfig is the fixed configuration of one print job.
type PrinterConfig struct {
	// Model is passed to Backend.Initialize as a driver hint.
	Model string
	// PageWidth is the number of characters per printed line.
	PageWidth int

	ConnectionAddress string
	ConnectionSpeed   int

	CutAfterPrint        bool
	OpenDrawerAfterPrint bool

	// Separator is the rune repeated by separator lines.
	Separator rune
	// CutDistance is the feed hint given to Backend.CutPaper.
	CutDistance int

	DrawerPin   DrawerPin
	DrawerOnMs  int
	DrawerOffMs int
}

// DefaultPrinterConfig returns a 32 column configuration, the common width
// of 58mm paper.
func DefaultPrinterConfig() PrinterConfig {
	return PrinterConfig{
		PageWidth:   32,
		Separator:   '-',
		CutDistance: 3,
		DrawerPin:   DrawerPin2,
		DrawerOnMs:  120,
		DrawerOffMs: 240,
	}
}

// ConnectionString is the value given to Backend.OpenConnection:
// the address alone, or "address,speed" when a speed is configured.
func (c PrinterConfig) ConnectionString() string {
	if c.ConnectionSpeed <= 0 {
		return c.ConnectionAddress
	}
	return c.ConnectionAddress + "," + strconv.Itoa(c.ConnectionSpeed)
}
