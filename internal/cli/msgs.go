package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Lay out and print receipts on fixed-width printers"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgPrintShort      = "Print a receipt document"
	MsgPreviewShort    = "Draw a receipt document on the terminal"
	MsgFormatShort     = "Describe the receipt document format"
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigInitShort = "Write the default configuration file"
	MsgCompletionShort = "Generate shell completion scripts"
	MsgCompletionLong  = "Generate a completion script for bash, zsh, fish or powershell and write it to standard output."

	// Status messages
	MsgConfigWritten = "Wrote default configuration to %s"
	MsgConfigExists  = "configuration file %s already exists"

	// Version output
	MsgVersionFormat = "sharprinter version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrOutputWriter = "failed to create report renderer: %w"
	MsgErrCreateDir    = "failed to create directory %s: %w"
	MsgErrWriteConfig  = "failed to write configuration: %w"
	MsgErrRenderDocs   = "failed to render format guide: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path of the config file"
	MsgFlagDryRun  = "Lay out the receipt without contacting the backend"
	MsgFlagFormat  = "Report format: auto, term, text or json"
	MsgFlagBackend = "Backend to print with, overriding output.backend"
	MsgFlagOutput  = "Target file of the file backend, overriding output.path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed docs/format.md
	formatGuide string
)
