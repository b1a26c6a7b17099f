// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/ui/view"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderJob renders the job as one JSON document
func (r *Renderer) RenderJob(job view.Job) error {
	return r.encoder.Encode(job)
}

// RenderError renders an error and its code as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
