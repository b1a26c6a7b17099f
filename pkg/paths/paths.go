package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the location of the user configuration file
	EnvConfigFile = "SHARPRINTER_CONFIG"

	// EnvStateDir overrides the XDG state directory for sharprinter
	EnvStateDir = "SHARPRINTER_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "sharprinter"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "sharprinter.log"
)

// ConfigFile returns the path of the user configuration file.
// SHARPRINTER_CONFIG wins over $XDG_CONFIG_HOME/sharprinter/config.toml.
func ConfigFile() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StateDir returns the directory holding runtime state such as logs.
func StateDir() string {
	if p := os.Getenv(EnvStateDir); p != "" {
		return p
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file inside StateDir.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Reload re-reads the XDG environment variables. Call it after changing
// XDG_* variables at runtime, tests mostly.
func Reload() {
	xdg.Reload()
}
