package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/csheth/quoffice/internal/transcript"
)

type ContextCmd struct {
	flags *Flags
}

// NewContextCmd creates a new context command
func NewContextCmd(flags *Flags) *ContextCmd {
	return &ContextCmd{flags: flags}
}

// Register adds the context command to the application
func (cmd *ContextCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "context",
		Usage:     "Print the conversation around a transcript position",
		UsageText: "quoffice [--radius N] context <position>",
		Description: `Prints the episode header followed by the lines within --radius of the
given position. The line at that position is marked with '>'.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ContextCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("context: expected exactly one position argument")
	}
	position, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("context: invalid position %q", c.Args().First())
	}

	corpus, err := cmd.flags.Source.Corpus()
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}

	radius := cmd.flags.Config.ContextRadius
	window, err := transcript.ContextWindow(corpus, position, radius)
	if err != nil {
		return fmt.Errorf("context: %w", err)
	}
	log.Debug().Int("position", position).Int("radius", radius).Msg("context")

	newPrinter(c.Root().Writer).Window(window)
	return nil
}
