package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:     "format",
		Short:   MsgFormatShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := renderGuide(cmd, width)
			if err != nil {
				return fmt.Errorf(MsgErrRenderDocs, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap the guide at this many columns")
	return cmd
}

// renderGuide renders the embedded format guide with glamour. Output that
// is not a terminal gets the plain notty style.
func renderGuide(cmd *cobra.Command, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(formatGuide)
}
