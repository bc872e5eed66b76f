package transcript

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Source loads the corpus for a path or glob exactly once and hands the
// same result to every caller for the life of the process.
type Source struct {
	pattern string
	opts    LoadOptions
	logger  zerolog.Logger

	once   sync.Once
	corpus *Corpus
	err    error
}

// NewSource returns a Source for pattern, which may be a plain file path or
// a doublestar glob such as "data/season-*.csv".
func NewSource(pattern string, opts LoadOptions, logger zerolog.Logger) *Source {
	return &Source{pattern: pattern, opts: opts, logger: logger}
}

// Pattern reports the path or glob the source reads.
func (s *Source) Pattern() string {
	return s.pattern
}

// Corpus loads the corpus on first use. Concurrent callers block until the
// single load finishes and then all observe the same corpus or error.
func (s *Source) Corpus() (*Corpus, error) {
	s.once.Do(func() {
		started := time.Now()
		s.corpus, s.err = s.load()
		if s.err != nil {
			s.logger.Error().Err(s.err).Str("source", s.pattern).Msg("transcript load failed")
			return
		}
		s.logger.Info().
			Str("source", s.pattern).
			Int("lines", s.corpus.Len()).
			Dur("duration", time.Since(started)).
			Msg("transcript loaded")
	})
	return s.corpus, s.err
}

func (s *Source) load() (*Corpus, error) {
	paths, err := ResolvePaths(s.pattern)
	if err != nil {
		return nil, err
	}
	return LoadFiles(paths, s.opts)
}

// ResolvePaths expands a glob pattern into files in lexical order. A pattern
// without glob metacharacters is returned unchanged so a missing file still
// surfaces as an open error.
func ResolvePaths(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: no data path configured", ErrLoad)
	}
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: glob %q: %w", ErrLoad, pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", ErrLoad, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
