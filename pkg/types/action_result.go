package types

import (
	"time"
)

// ActionResult represents the outcome of executing an action
type ActionResult struct {
	// Index is the position of the action in the queue
	Index int

	// Action that was executed
	Action Action

	// Success indicates whether the action completed successfully
	Success bool

	// Error contains any error that occurred during execution
	Error error

	// Duration is how long the action took to execute
	Duration time.Duration

	// Skipped indicates the action never reached the backend (dry run or
	// cancellation)
	Skipped bool
}
