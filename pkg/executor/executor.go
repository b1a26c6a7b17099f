package executor

import (
	"context"
	"time"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/logging"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	Backend types.Backend
	Config  types.PrinterConfig
	DryRun  bool
	// Logger overrides the component logger when set
	Logger *zerolog.Logger
}

// Executor runs action queues against a backend
type Executor struct {
	backend types.Backend
	config  types.PrinterConfig
	dryRun  bool
	logger  zerolog.Logger
}

// Report summarises one job run
type Report struct {
	JobID     string
	Results   []types.ActionResult
	Cancelled bool
	Duration  time.Duration
}

// Outcome is what an asynchronous run delivers on its channel.
type Outcome struct {
	Report *Report
	Err    error
}

// Executed returns how many actions reached the backend successfully.
func (r *Report) Executed() int {
	n := 0
	for _, res := range r.Results {
		if res.Success && !res.Skipped {
			n++
		}
	}
	return n
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Executor{
		backend: opts.Backend,
		config:  opts.Config,
		dryRun:  opts.DryRun,
		logger:  logger,
	}
}

// Run executes the actions in order and always returns a report, even
// when it also returns an error.
func (e *Executor) Run(ctx context.Context, actions []types.Action) (*Report, error) {
	start := time.Now()
	report := &Report{
		JobID:   uuid.NewString(),
		Results: make([]types.ActionResult, 0, len(actions)),
	}
	logger := e.logger.With().Str("job", report.JobID).Logger()

	defer func() {
		report.Duration = time.Since(start)
	}()

	if e.dryRun {
		for i, action := range actions {
			logger.Debug().
				Int("index", i).
				Str("kind", string(action.Kind())).
				Str("description", action.Description()).
				Bool("dry_run", true).
				Msg("Skipping action")
			report.Results = append(report.Results, types.ActionResult{
				Index: i, Action: action, Success: true, Skipped: true,
			})
		}
		logger.Info().Int("actions", len(actions)).Msg("Dry run - backend not contacted")
		return report, nil
	}

	if e.backend == nil {
		return report, errors.New(errors.ErrInternal, "no backend configured")
	}

	logger.Info().
		Int("actions", len(actions)).
		Str("model", e.config.Model).
		Msg("Starting print job")

	err := e.run(ctx, logger, actions, report)

	logger.Info().
		Int("executed", report.Executed()).
		Bool("cancelled", report.Cancelled).
		Dur("duration", time.Since(start)).
		Bool("failed", err != nil).
		Msg("Print job finished")

	return report, err
}

func (e *Executor) run(ctx context.Context, logger zerolog.Logger, actions []types.Action, report *Report) (err error) {
	if ierr := e.backend.Initialize(e.config.Model); ierr != nil {
		logger.Error().Err(ierr).Msg("Backend initialization failed")
		return errors.Wrapf(ierr, errors.ErrBackendInit, "failed to initialize backend for model %q", e.config.Model)
	}
	opened := false

	defer func() {
		if cerr := e.cleanup(logger, opened); cerr != nil && err == nil {
			err = cerr
		}
	}()

	conn := e.config.ConnectionString()
	if oerr := e.backend.OpenConnection(conn); oerr != nil {
		logger.Error().Err(oerr).Str("connection", conn).Msg("Failed to open connection")
		return errors.Wrapf(oerr, errors.ErrBackendOpen, "failed to open connection %q", conn)
	}
	opened = true

	for i, action := range actions {
		if cerr := ctx.Err(); cerr != nil {
			report.Cancelled = true
			for j := i; j < len(actions); j++ {
				report.Results = append(report.Results, types.ActionResult{
					Index: j, Action: actions[j], Skipped: true, Error: cerr,
				})
			}
			logger.Warn().
				Int("remaining", len(actions)-i).
				Msg("Print job cancelled, skipping remaining actions")
			return errors.Wrap(cerr, errors.ErrCancelled, "print job cancelled")
		}

		result := e.executeAction(logger, i, action)
		report.Results = append(report.Results, result)
		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrBackendEmit, "emit failed").
				AtAction(i, string(action.Kind()))
		}
	}

	return e.finish(logger)
}

// executeAction executes a single action and returns its result
func (e *Executor) executeAction(logger zerolog.Logger, index int, action types.Action) types.ActionResult {
	start := time.Now()

	logger.Debug().
		Int("index", index).
		Str("kind", string(action.Kind())).
		Str("description", action.Description()).
		Msg("Executing action")

	if err := action.Execute(e.backend); err != nil {
		logger.Error().
			Err(err).
			Int("index", index).
			Str("kind", string(action.Kind())).
			Msg("Action execution failed")

		return types.ActionResult{
			Index:    index,
			Action:   action,
			Success:  false,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	return types.ActionResult{
		Index:    index,
		Action:   action,
		Success:  true,
		Duration: time.Since(start),
	}
}

// finish cuts the paper and kicks the drawer when configured
func (e *Executor) finish(logger zerolog.Logger) error {
	if e.config.CutAfterPrint {
		if err := e.backend.CutPaper(e.config.CutDistance); err != nil {
			logger.Error().Err(err).Msg("Paper cut failed")
			return errors.Wrap(err, errors.ErrBackendEmit, "failed to cut paper")
		}
	}
	if e.config.OpenDrawerAfterPrint {
		if err := e.backend.OpenCashDrawer(e.config.DrawerPin, e.config.DrawerOnMs, e.config.DrawerOffMs); err != nil {
			logger.Error().Err(err).Msg("Cash drawer kick failed")
			return errors.Wrap(err, errors.ErrBackendEmit, "failed to open cash drawer")
		}
	}
	return nil
}

// cleanup releases the backend and closes the connection if it was opened.
// Both steps run even when the first one fails; the first failure is returned.
func (e *Executor) cleanup(logger zerolog.Logger, opened bool) error {
	var first error

	if err := e.backend.Release(); err != nil {
		logger.Warn().Err(err).Msg("Backend release failed")
		first = errors.Wrap(err, errors.ErrBackendClose, "failed to release backend")
	}

	if opened {
		if err := e.backend.CloseConnection(); err != nil {
			logger.Warn().Err(err).Msg("Closing connection failed")
			if first == nil {
				first = errors.Wrapf(err, errors.ErrBackendClose, "failed to close connection %q", e.config.ConnectionString())
			}
		}
	}

	return first
}
