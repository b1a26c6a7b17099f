// Package view flattens print jobs into plain data shared by the
// terminal, text and JSON renderers.
package view

import (
	"github.com/accntech/sharprinter/pkg/executor"
	"github.com/accntech/sharprinter/pkg/types"
)

// Action status values
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusQueued  = "queued"
)

// Action is one row of a job listing.
type Action struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// Job is the summary of one run, or of a queue that has not run.
type Job struct {
	JobID      string   `json:"job_id,omitempty"`
	DryRun     bool     `json:"dry_run"`
	Cancelled  bool     `json:"cancelled"`
	Executed   int      `json:"executed"`
	DurationMs int64    `json:"duration_ms"`
	Actions    []Action `json:"actions"`
}

// FromReport converts an executor report.
func FromReport(r *executor.Report, dryRun bool) Job {
	job := Job{
		JobID:      r.JobID,
		DryRun:     dryRun,
		Cancelled:  r.Cancelled,
		Executed:   r.Executed(),
		DurationMs: r.Duration.Milliseconds(),
		Actions:    make([]Action, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		a := Action{
			Index:       res.Index,
			Kind:        string(res.Action.Kind()),
			Description: res.Action.Description(),
		}
		switch {
		case res.Skipped:
			a.Status = StatusSkipped
		case res.Success:
			a.Status = StatusOK
		default:
			a.Status = StatusFailed
		}
		if res.Error != nil {
			a.Error = res.Error.Error()
		}
		job.Actions = append(job.Actions, a)
	}
	return job
}

// FromQueue lists queued actions that have not been executed.
func FromQueue(actions []types.Action) Job {
	job := Job{DryRun: true, Actions: make([]Action, 0, len(actions))}
	for i, action := range actions {
		job.Actions = append(job.Actions, Action{
			Index:       i,
			Kind:        string(action.Kind()),
			Description: action.Description(),
			Status:      StatusQueued,
		})
	}
	return job
}
