package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/csheth/quoffice/internal/config"
	"github.com/csheth/quoffice/internal/transcript"
)

type Flags struct {
	ConfigPath string
	DataPath   string
	LogLevel   string
	LogFile    string
	Radius     int
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Source loads the transcript corpus once for whichever command needs it
	Source *transcript.Source
}

// Overrides returns the flag values that take precedence over the config file.
func (f *Flags) Overrides() config.Overrides {
	return config.Overrides{
		DataPath: f.DataPath,
		Radius:   f.Radius,
		Theme:    f.Theme,
		LogLevel: f.LogLevel,
	}
}

// GlobalFlags returns the flags shared by every subcommand.
func GlobalFlags(f *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("QUOFFICE_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data",
			Aliases:     []string{"d"},
			Usage:       "transcript file or glob (overrides data_path)",
			Sources:     cli.EnvVars("QUOFFICE_DATA"),
			Destination: &f.DataPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("QUOFFICE_LOG_LEVEL"),
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file",
			Sources:     cli.EnvVars("QUOFFICE_LOG_FILE"),
			Value:       DefaultLogFile(),
			Destination: &f.LogFile,
		},
		&cli.IntFlag{
			Name:        "radius",
			Aliases:     []string{"r"},
			Usage:       "lines of context either side of a quote (1-10)",
			Destination: &f.Radius,
		},
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "color theme (office, tokyo-night, gruvbox)",
			Destination: &f.Theme,
		},
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quoffice", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/quoffice/quoffice.log
// On Linux: $XDG_STATE_HOME/quoffice/quoffice.log (defaults to ~/.local/state/quoffice/quoffice.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "quoffice", "quoffice.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "quoffice", "quoffice.log")
	}

	return filepath.Join(home, ".local", "state", "quoffice", "quoffice.log")
}
