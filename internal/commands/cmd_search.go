package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/csheth/quoffice/internal/transcript"
)

type SearchCmd struct {
	flags *Flags

	// flags
	limit int
}

// NewSearchCmd creates a new search command
func NewSearchCmd(flags *Flags) *SearchCmd {
	return &SearchCmd{flags: flags}
}

// Register adds the search command to the application
func (cmd *SearchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "search",
		Usage:     "Print every line containing a keyword or phrase",
		UsageText: "quoffice search [--limit N] <query...>",
		Description: `Matches are case-insensitive and ignore punctuation. Each match is printed
as "#position  Character (SxEy) - text" in transcript order. Use the position
with 'quoffice context' to read the surrounding scene.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "print at most N matches (0 prints all)",
				Destination: &cmd.limit,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SearchCmd) run(_ context.Context, c *cli.Command) error {
	query := strings.Join(c.Args().Slice(), " ")
	if transcript.Blank(query) {
		return fmt.Errorf("search: enter a keyword or phrase to search for quotes")
	}
	if cmd.limit < 0 {
		return fmt.Errorf("search: --limit must not be negative")
	}

	corpus, err := cmd.flags.Source.Corpus()
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}

	results := transcript.Search(corpus, query)
	log.Info().Str("query", results.Query).Int("matches", results.Len()).Msg("search")
	if results.Empty() {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No quotes found.")
		return nil
	}

	out := newPrinter(c.Root().Writer)
	lines := results.Lines()
	if cmd.limit > 0 && cmd.limit < len(lines) {
		lines = lines[:cmd.limit]
	}
	for _, line := range lines {
		out.Result(line)
	}
	if len(lines) < results.Len() {
		_, _ = fmt.Fprintf(c.Root().ErrWriter, "showing %d of %d matches\n", len(lines), results.Len())
	}
	return nil
}
