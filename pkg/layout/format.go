package layout

import (
	"strings"

	"github.com/accntech/sharprinter/pkg/types"
)

// FormatLine pads line to exactly width runes according to align.
//
// Center pads on the left until the line is (width+len)/2 long, then pads
// on the right to width. With an odd remainder the extra space lands on
// the right.
//
// A line longer than width is truncated to its first width runes and no
// alignment is applied.
func FormatLine(line string, width int, align types.HAlign) string {
	if width <= 0 {
		return ""
	}
	n := Width(line)
	if n > width {
		return truncate(line, width)
	}

	switch align {
	case types.AlignRight:
		return padLeft(line, width)
	case types.AlignCenter:
		return padRight(padLeft(line, (width+n)/2), width)
	default:
		return padRight(line, width)
	}
}

// Fit lays out unwrapped content on a single line of width runes:
// truncated when too long, aligned and padded otherwise.
func Fit(content string, width int, align types.HAlign) string {
	return FormatLine(content, width, align)
}

// Blank returns a line of width spaces.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// Repeat returns r repeated width times.
func Repeat(r rune, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(r), width)
}

func padLeft(s string, total int) string {
	if n := Width(s); n < total {
		return strings.Repeat(" ", total-n) + s
	}
	return s
}

func padRight(s string, total int) string {
	if n := Width(s); n < total {
		return s + strings.Repeat(" ", total-n)
	}
	return s
}

func truncate(s string, width int) string {
	return string([]rune(s)[:width])
}
