package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks text into lines of at most maxWidth runes using greedy word
// wrap. Words longer than maxWidth are hard split: the tail of the current
// line is filled with a prefix of the word, then the rest is cut into
// maxWidth chunks. Empty input, or maxWidth < 1, yields no lines.
func Wrap(text string, maxWidth int) []string {
	if maxWidth < 1 {
		return nil
	}

	var lines []string
	var line []rune

	emit := func() {
		lines = append(lines, string(line))
		line = line[:0]
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)

		if len(w) > maxWidth {
			if len(line) > 0 {
				if room := maxWidth - len(line) - 1; room > 0 {
					line = append(line, ' ')
					line = append(line, w[:room]...)
					w = w[room:]
				}
				emit()
			}
			for len(w) > maxWidth {
				lines = append(lines, string(w[:maxWidth]))
				w = w[maxWidth:]
			}
			line = append(line, w...)
			continue
		}

		if len(line) > 0 && len(line)+1+len(w) > maxWidth {
			emit()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}

	if len(line) > 0 {
		emit()
	}
	return lines
}

// Width returns the number of grid cells s occupies.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Sanitize folds line breaks into single spaces so a cell's content is one
// logical paragraph.
func Sanitize(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
