package transcript

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Required column names in the transcript header.
const (
	ColumnText        = "text"
	ColumnCharacter   = "character"
	ColumnSeason      = "season"
	ColumnEpisode     = "episode"
	ColumnEpisodeName = "episode_name"
	ColumnIMDBRating  = "imdb_rating"
	ColumnAirDate     = "air_date"
)

var requiredColumns = []string{
	ColumnText,
	ColumnCharacter,
	ColumnSeason,
	ColumnEpisode,
	ColumnEpisodeName,
	ColumnIMDBRating,
	ColumnAirDate,
}

// LoadOptions controls how a delimited transcript file is parsed.
type LoadOptions struct {
	// Delimiter overrides the field separator. Zero picks tab for .tsv
	// files and comma otherwise.
	Delimiter rune
	// Name labels the source in error messages.
	Name string
}

// LoadFile reads a single transcript file.
func LoadFile(path string, opts LoadOptions) (*Corpus, error) {
	return LoadFiles([]string{path}, opts)
}

// LoadFiles reads each file in order and concatenates them into one corpus.
// Positions continue across files.
func LoadFiles(paths []string, opts LoadOptions) (*Corpus, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no transcript files", ErrLoad)
	}
	var lines []DialogueLine
	for _, path := range paths {
		fileOpts := opts
		if fileOpts.Name == "" {
			fileOpts.Name = filepath.Base(path)
		}
		if fileOpts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
			fileOpts.Delimiter = '\t'
		}
		parsed, err := readFile(path, fileOpts)
		if err != nil {
			return nil, err
		}
		lines = append(lines, parsed...)
	}
	return NewCorpus(lines), nil
}

func readFile(path string, opts LoadOptions) ([]DialogueLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoad, opts.Name, err)
	}
	defer f.Close()
	return parseRows(f, opts)
}

// Load parses a transcript table from r.
func Load(r io.Reader, opts LoadOptions) (*Corpus, error) {
	lines, err := parseRows(r, opts)
	if err != nil {
		return nil, err
	}
	return NewCorpus(lines), nil
}

func parseRows(r io.Reader, opts LoadOptions) ([]DialogueLine, error) {
	name := opts.Name
	if name == "" {
		name = "transcript"
	}
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty", ErrLoad, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s header: %w", ErrLoad, name, err)
	}
	columns, err := resolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}

	var lines []DialogueLine
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoad, name, err)
		}
		line, err := columns.decode(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %w", ErrLoad, name, row, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

type columnIndex map[string]int

func resolveColumns(header []string) (columnIndex, error) {
	index := columnIndex{}
	for i, cell := range header {
		key := strings.ToLower(cleanCell(cell))
		if _, seen := index[key]; seen {
			continue
		}
		index[key] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func (c columnIndex) cell(record []string, column string) (string, error) {
	idx := c[column]
	if idx >= len(record) {
		return "", fmt.Errorf("column %q: row has %d field(s)", column, len(record))
	}
	if column == ColumnText {
		return record[idx], nil
	}
	return strings.TrimSpace(record[idx]), nil
}

func (c columnIndex) decode(record []string) (DialogueLine, error) {
	var line DialogueLine
	values := make(map[string]string, len(requiredColumns))
	for _, col := range requiredColumns {
		value, err := c.cell(record, col)
		if err != nil {
			return line, err
		}
		values[col] = value
	}

	season, err := parseWhole(values[ColumnSeason])
	if err != nil {
		return line, fmt.Errorf("column %q: %w", ColumnSeason, err)
	}
	episode, err := parseWhole(values[ColumnEpisode])
	if err != nil {
		return line, fmt.Errorf("column %q: %w", ColumnEpisode, err)
	}

	line = DialogueLine{
		Text:        values[ColumnText],
		Character:   values[ColumnCharacter],
		Season:      season,
		Episode:     episode,
		EpisodeName: values[ColumnEpisodeName],
		AirDate:     values[ColumnAirDate],
	}
	if raw := values[ColumnIMDBRating]; raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
			return DialogueLine{}, fmt.Errorf("column %q: invalid rating %q", ColumnIMDBRating, raw)
		}
		line.IMDBRating = rating
		line.HasRating = true
	}
	return line, nil
}

// parseWhole accepts "3" as well as the "3.0" form spreadsheet exports emit.
func parseWhole(raw string) (int, error) {
	if raw == "" {
		return 0, errors.New("value is empty")
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return int(f), nil
}

func cleanCell(value string) string {
	value = strings.TrimPrefix(value, "\ufeff")
	return strings.TrimSpace(value)
}
