// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/accntech/sharprinter/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderJob renders one tab aligned line per action and a summary line
func (r *Renderer) RenderJob(job view.Job) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, a := range job.Actions {
		status := a.Status
		if a.Error != "" {
			status += ": " + a.Error
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.Index, a.Kind, a.Description, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var line string
	switch {
	case job.JobID == "":
		line = fmt.Sprintf("%d action(s) queued", len(job.Actions))
	case job.Cancelled:
		line = fmt.Sprintf("job %s cancelled: %d of %d action(s) printed", job.JobID, job.Executed, len(job.Actions))
	default:
		line = fmt.Sprintf("job %s: %d of %d action(s) printed", job.JobID, job.Executed, len(job.Actions))
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
