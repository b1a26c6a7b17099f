package types

// Backend is the output sink a print queue is executed against. Text handed
// to EmitTextLine is already wrapped and padded to the page grid; a backend
// that only accepts raw text may re-align it using align.
//
// Implementations are used by one job at a time and need no locking.
type Backend interface {
	Initialize(model string) error
	OpenConnection(conn string) error
	CloseConnection() error
	Release() error

	FeedLines(count int) error
	EmitTextLine(text string, align HAlign, size TextSize) error
	EmitBarcode(data string, cfg BarcodeConfig) error
	EmitImage(path, label string, scale ScaleMode) error

	CutPaper(distance int) error
	OpenCashDrawer(pin DrawerPin, onMs, offMs int) error
}
