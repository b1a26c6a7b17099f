// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/ui/view"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// StatusStyle returns the style used for an action status
func StatusStyle(status string) *pterm.Style {
	switch status {
	case view.StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case view.StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case view.StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// RenderJob renders the action table and a one line summary
func (r *Renderer) RenderJob(job view.Job) error {
	data := pterm.TableData{{"#", "Kind", "Action", "Status"}}
	for _, a := range job.Actions {
		status := StatusStyle(a.Status).Sprint(a.Status)
		if a.Error != "" {
			status += " " + pterm.FgGray.Sprint(a.Error)
		}
		data = append(data, []string{strconv.Itoa(a.Index), a.Kind, a.Description, status})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render job table: %w", err)
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.output, summary(job))
	return err
}

func summary(job view.Job) string {
	switch {
	case job.JobID == "":
		return pterm.Info.Sprint(fmt.Sprintf("%d action(s) queued, nothing printed", len(job.Actions)))
	case job.DryRun:
		return pterm.Info.Sprint(fmt.Sprintf("Dry run %s: %d action(s), backend not contacted", job.JobID, len(job.Actions)))
	case job.Cancelled:
		return pterm.Warning.Sprint(fmt.Sprintf("Job %s cancelled after %d action(s)", job.JobID, job.Executed))
	case job.Executed < len(job.Actions):
		return pterm.Error.Sprint(fmt.Sprintf("Job %s failed after %d of %d action(s)", job.JobID, job.Executed, len(job.Actions)))
	default:
		return pterm.Success.Sprint(fmt.Sprintf("Printed %d action(s) in %dms (job %s)", job.Executed, job.DurationMs, job.JobID))
	}
}

// RenderError renders an error with its code when it has one
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s %s", pterm.Error.MessageStyle.Sprint(code), msg)
	}
	_, werr := fmt.Fprintln(r.output, pterm.Error.Sprint(msg))
	return werr
}

// RenderMessage renders a simple informational message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}
