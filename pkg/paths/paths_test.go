package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/accntech/sharprinter/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigFile(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(paths.EnvConfigFile, "/etc/receipts/printer.toml")
		assert.Equal(t, "/etc/receipts/printer.toml", paths.ConfigFile())
	})

	t.Run("xdg config home", func(t *testing.T) {
		dir := t.TempDir()
		t.Cleanup(paths.Reload)
		t.Setenv(paths.EnvConfigFile, "")
		t.Setenv("XDG_CONFIG_HOME", dir)
		paths.Reload()

		assert.Equal(t, filepath.Join(dir, "sharprinter", "config.toml"), paths.ConfigFile())
	})
}

func TestLogFile(t *testing.T) {
	t.Run("state dir override", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "/var/lib/sharprinter")
		assert.Equal(t, "/var/lib/sharprinter/sharprinter.log", paths.LogFile())
	})

	t.Run("xdg state home", func(t *testing.T) {
		dir := t.TempDir()
		t.Cleanup(paths.Reload)
		t.Setenv(paths.EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", dir)
		paths.Reload()

		assert.Equal(t, filepath.Join(dir, "sharprinter", "sharprinter.log"), paths.LogFile())
	})
}
