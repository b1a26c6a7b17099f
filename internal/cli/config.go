package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/accntech/sharprinter/pkg/config"
	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.AddCommand(newConfigInitCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if path == "" {
				path = paths.ConfigFile()
			}
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrConfigLoad, MsgConfigExists, path).WithDetail("path", path)
			}

			dir := filepath.Dir(path)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf(MsgErrCreateDir, dir, err)
			}
			if err := os.WriteFile(path, []byte(config.DefaultsContent()), 0o644); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, err)
			}

			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln(MsgConfigWritten, path)
			return nil
		},
	}
}
