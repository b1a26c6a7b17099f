// Package ui renders print job summaries for the command line in
// terminal, plain text or JSON form.
package ui

import (
	"fmt"
	"io"

	"github.com/accntech/sharprinter/pkg/ui/json"
	"github.com/accntech/sharprinter/pkg/ui/terminal"
	"github.com/accntech/sharprinter/pkg/ui/text"
	"github.com/accntech/sharprinter/pkg/ui/view"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderJob renders a job listing, executed or only queued
	RenderJob(job view.Job) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
