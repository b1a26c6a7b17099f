package backend

import (
	"strings"
	"testing"

	"github.com/accntech/sharprinter/pkg/types"
	"github.com/stretchr/testify/assert"
)

func pad(left int, s string, width int) string {
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}

func TestSheet_Barcode(t *testing.T) {
	tests := []struct {
		name string
		hri  types.HRIPosition
		want []string
	}{
		{"none", types.HRINone, []string{pad(3, "[barcode 2x80]", 20)}},
		{"below", types.HRIBelow, []string{pad(3, "[barcode 2x80]", 20), pad(8, "123", 20)}},
		{"above", types.HRIAbove, []string{pad(8, "123", 20), pad(3, "[barcode 2x80]", 20)}},
		{"both", types.HRIBoth, []string{pad(8, "123", 20), pad(3, "[barcode 2x80]", 20), pad(8, "123", 20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSheet(20)
			cfg := types.DefaultBarcodeConfig()
			cfg.HRI = tt.hri
			s.barcode("123", cfg)
			assert.Equal(t, tt.want, s.texts())
		})
	}
}

func TestSheet_Primitives(t *testing.T) {
	s := newSheet(24)
	s.text("hi", types.AlignRight, types.SizeNormal)
	s.feed(1)
	s.image("/var/lib/logo.png", "Thanks", types.ScaleFit)
	s.drawer(types.DrawerPin2, 120, 240)
	s.cut(1)

	assert.Equal(t, []string{
		strings.Repeat(" ", 22) + "hi",
		strings.Repeat(" ", 24),
		pad(2, "[image logo.png fit]", 24),
		pad(9, "Thanks", 24),
		"[drawer pin 2 120/240ms]",
		strings.Repeat(" ", 24),
		"8<" + strings.Repeat("-", 22),
	}, s.texts())

	assert.Equal(t, LineText, s.lines[0].Kind)
	assert.Equal(t, LineBlank, s.lines[1].Kind)
	assert.Equal(t, LinePlaceholder, s.lines[2].Kind)

	for _, line := range s.texts() {
		assert.Len(t, []rune(line), 24)
	}
}

func TestSheet_LargeKind(t *testing.T) {
	s := newSheet(10)
	s.text("BIG", types.AlignLeft, types.SizeLarge)
	assert.Equal(t, LineLarge, s.lines[0].Kind)
}

func TestNewSheet_DefaultWidth(t *testing.T) {
	assert.Equal(t, 32, newSheet(0).width)
}
