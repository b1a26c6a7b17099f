package cli

import (
	"fmt"
	"io"

	"github.com/accntech/sharprinter/pkg/backend"
	"github.com/accntech/sharprinter/pkg/config"
	"github.com/accntech/sharprinter/pkg/logging"
	"github.com/accntech/sharprinter/pkg/printer"
	"github.com/accntech/sharprinter/pkg/receipt"
	"github.com/accntech/sharprinter/pkg/ui"
	"github.com/accntech/sharprinter/pkg/ui/view"
	"github.com/spf13/cobra"
)

// jobOptions are the per-command settings of a print job.
type jobOptions struct {
	backend string
	output  string
	preview bool
}

func newPrintCmd(root *rootOptions) *cobra.Command {
	job := &jobOptions{}
	cmd := &cobra.Command{
		Use:     "print <document>",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, root, job, args[0])
		},
	}
	cmd.Flags().StringVar(&job.backend, "backend", "", MsgFlagBackend)
	cmd.Flags().StringVarP(&job.output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "preview <document>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, root, &jobOptions{backend: "console", preview: true}, args[0])
		},
	}
}

// runJob loads configuration and document, builds the receipt and runs it.
func runJob(cmd *cobra.Command, root *rootOptions, job *jobOptions, path string) error {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "print "+path)
	defer done()

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}

	name := cfg.Output.Backend
	if job.backend != "" {
		name = job.backend
	}
	pc := cfg.PrinterConfig()
	if job.output != "" {
		pc.ConnectionAddress = job.output
	}

	doc, err := receipt.Load(path)
	if err != nil {
		return err
	}

	b, err := backend.New(name, backend.Options{
		Output:    cmd.OutOrStdout(),
		PageWidth: pc.PageWidth,
	})
	if err != nil {
		return err
	}

	ctx, err := printer.New(printer.Options{
		Config:  pc,
		Backend: b,
		DryRun:  root.dryRun,
	})
	if err != nil {
		return err
	}
	if err := receipt.Apply(doc, ctx); err != nil {
		return err
	}

	logger.Info().
		Str("document", path).
		Str("backend", name).
		Int("actions", len(ctx.Actions())).
		Bool("dry_run", root.dryRun).
		Msg("Receipt laid out")

	report, err := ctx.Execute(cmd.Context())
	if job.preview && !root.dryRun {
		return err
	}

	// The console backend owns stdout, so its report goes to stderr.
	var out io.Writer = cmd.OutOrStdout()
	if name == "console" && !root.dryRun {
		out = cmd.ErrOrStderr()
	}
	renderer, rerr := newRenderer(root, cfg, out)
	if rerr != nil {
		return rerr
	}
	if report != nil {
		if rerr := renderer.RenderJob(view.FromReport(report, root.dryRun)); rerr != nil {
			return rerr
		}
	}
	return err
}

func newRenderer(root *rootOptions, cfg *config.Config, out io.Writer) (ui.Renderer, error) {
	format := cfg.Format()
	if root.format != "" {
		f, err := ui.ParseFormat(root.format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutputWriter, err)
	}
	return renderer, nil
}
