package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/csheth/quoffice/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	noAltScreen bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-alt-screen",
			Usage:       "render inline instead of switching to the alternate screen",
			Sources:     cli.EnvVars("QUOFFICE_NO_ALT_SCREEN"),
			Destination: &cmd.noAltScreen,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	m := tui.New(tui.Config{
		Context: ctx,
		Source:  cmd.flags.Source,
		Radius:  cmd.flags.Config.ContextRadius,
		Theme:   cmd.flags.Config.Theme,
		Logger:  log.With().Str("component", "tui").Logger(),
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cmd.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if loadErr := tui.LoadError(finalModel); loadErr != nil {
		return fmt.Errorf("load transcripts: %w", loadErr)
	}
	return nil
}
