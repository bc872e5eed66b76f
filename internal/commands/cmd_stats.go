package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

type StatsCmd struct {
	flags *Flags
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Summarise the loaded transcripts",
		UsageText: "quoffice stats",
		Action:    cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	corpus, err := cmd.flags.Source.Corpus()
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}
	stats := corpus.Stats()

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "SOURCE\t%s\n", cmd.flags.Source.Pattern())
	_, _ = fmt.Fprintf(w, "LINES\t%d\n", stats.Lines)
	_, _ = fmt.Fprintf(w, "CHARACTERS\t%d\n", stats.Characters)
	_, _ = fmt.Fprintf(w, "SEASONS\t%d\n", stats.Seasons)
	_, _ = fmt.Fprintf(w, "EPISODES\t%d\n", stats.Episodes)
	return w.Flush()
}
