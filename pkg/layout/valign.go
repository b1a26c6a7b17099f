package layout

import "github.com/accntech/sharprinter/pkg/types"

// AlignVertical pads lines to exactly height entries with blank lines of
// fillWidth spaces. Existing lines are returned untouched; when there are
// already height lines or more, the input comes back as is.
func AlignVertical(lines []string, height int, valign types.VAlign, fillWidth int) []string {
	excess := height - len(lines)
	if excess <= 0 {
		return lines
	}

	var top, bottom int
	switch valign {
	case types.VAlignBottom:
		top = excess
	case types.VAlignCenter:
		top = excess / 2
		bottom = excess - top
	default:
		bottom = excess
	}

	blank := Blank(fillWidth)
	out := make([]string, 0, height)
	for i := 0; i < top; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for i := 0; i < bottom; i++ {
		out = append(out, blank)
	}
	return out
}
