package lexicon

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

// Options configures a merge.
type Options struct {
	// Inputs are cleaned dataset files, highest precedence first.
	Inputs []string
	// NFC normalizes pronunciations to composed form before tokenizing.
	NFC bool
}

// Stats counts what happened during a merge.
type Stats struct {
	Files   int
	Read    int
	Added   int
	Skipped int
}

// Builder merges cleaned datasets into a Lexicon.
type Builder struct {
	options Options
	logger  *slog.Logger
}

// NewBuilder creates a builder.
func NewBuilder(options Options, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{options: options, logger: logger}
}

// Build reads every input in order and returns the merged lexicon. The first
// unreadable file or unresolvable pronunciation aborts the build.
func (b *Builder) Build() (*Lexicon, Stats, error) {
	lex := New()
	var stats Stats

	b.logger.Info("Start collecting data.")
	for _, path := range b.options.Inputs {
		b.logger.Info("Reading dataset", slog.String("file", path))

		ds, err := pronunciation.ReadFile(path)
		if err != nil {
			return nil, stats, err
		}
		stats.Files++

		if err := b.merge(lex, ds, &stats); err != nil {
			return nil, stats, fmt.Errorf("%s: %w", path, err)
		}
	}

	return lex, stats, nil
}

func (b *Builder) merge(lex *Lexicon, ds *pronunciation.Dataset, stats *Stats) error {
	for word, v := range ds.All() {
		stats.Read++
		if lex.Has(word) {
			stats.Skipped++
			b.logger.Info("Skipped word, already in dataset", slog.String("word", word))
			continue
		}

		phonemes, err := pronunciation.Resolve(v)
		if err != nil {
			return fmt.Errorf("word %q: %w", word, err)
		}
		if b.options.NFC {
			phonemes = norm.NFC.String(phonemes)
		}

		lex.Add(word, SplitPhonemes(phonemes))
		stats.Added++
	}
	return nil
}
