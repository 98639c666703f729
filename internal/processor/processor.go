package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"codeberg.org/snonux/phonoprep/internal/archive"
	"codeberg.org/snonux/phonoprep/internal/batch"
	"codeberg.org/snonux/phonoprep/internal/cleaner"
	"codeberg.org/snonux/phonoprep/internal/cli"
	"codeberg.org/snonux/phonoprep/internal/lexdb"
	"codeberg.org/snonux/phonoprep/internal/lexicon"
	"codeberg.org/snonux/phonoprep/internal/lookup"
)

// notFound is printed in place of a pronunciation when a lookup misses.
const notFound = "-"

// Processor runs the pipeline stages configured by flags
type Processor struct {
	flags  *cli.Flags
	logger *slog.Logger
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{flags: flags, logger: logger}
}

// Clean runs the cleaning stage over flags.DatasetDir.
func (p *Processor) Clean() error {
	if p.flags.Archive {
		if err := p.archiveOutput(); err != nil {
			return err
		}
	}

	c := cleaner.NewCleaner(cleaner.Options{
		InputDir:  p.flags.DatasetDir,
		OutputDir: p.flags.OutputDir,
		Sources:   p.flags.Sources,
	}, p.logger)

	summary, err := c.Run()
	if err != nil {
		return err
	}

	for _, st := range summary.Stats {
		p.logger.Info("Cleaned source",
			slog.String("file", st.Source),
			slog.Int("read", st.Read),
			slog.Int("kept", st.Kept),
			slog.Int("duplicates", st.Duplicates),
			slog.Int("dropped", st.Dropped),
			slog.Int("collapsed", st.Collapsed))
	}
	return nil
}

func (p *Processor) archiveOutput() error {
	if _, err := os.Stat(p.flags.OutputDir); errors.Is(err, fs.ErrNotExist) {
		p.logger.Debug("Nothing to archive", slog.String("dir", p.flags.OutputDir))
		return nil
	}

	archived, err := archive.ArchiveDir(p.flags.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to archive output directory: %w", err)
	}
	p.logger.Info("Archived previous output", slog.String("dir", archived))
	return nil
}

// BuildLexicon merges flags.InputFiles into flags.OutFile and, when
// flags.DBPath is set, exports the result to SQLite.
func (p *Processor) BuildLexicon(ctx context.Context) error {
	b := lexicon.NewBuilder(lexicon.Options{
		Inputs: p.flags.InputFiles,
		NFC:    p.flags.NFC,
	}, p.logger)

	lex, stats, err := b.Build()
	if err != nil {
		return err
	}

	if err := lexicon.WriteFile(p.flags.OutFile, lex); err != nil {
		return err
	}
	p.logger.Info("Wrote lexicon",
		slog.String("file", p.flags.OutFile),
		slog.Int("entries", lex.Len()),
		slog.Int("skipped", stats.Skipped))

	if p.flags.DBPath != "" {
		if err := p.exportDB(ctx, lex); err != nil {
			return fmt.Errorf("%s: %w", p.flags.DBPath, err)
		}
	}
	return nil
}

// exportDB writes lex to flags.DBPath and reads it back to check that every
// entry arrived.
func (p *Processor) exportDB(ctx context.Context, lex *lexicon.Lexicon) error {
	if err := lexdb.Write(ctx, p.flags.DBPath, lex); err != nil {
		return err
	}

	db, err := lexdb.Open(p.flags.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	stored, err := db.Lexicon(ctx)
	if err != nil {
		return fmt.Errorf("failed to read back database: %w", err)
	}
	if stored.Len() != lex.Len() {
		return fmt.Errorf("database holds %d entries, expected %d", stored.Len(), lex.Len())
	}

	p.logger.Info("Exported lexicon database",
		slog.String("file", p.flags.DBPath),
		slog.Int("entries", stored.Len()))
	return nil
}

// tokenFinder returns the phoneme tokens stored for a word.
type tokenFinder func(ctx context.Context, word string) ([]string, bool, error)

// Lookup prints one line per word to w. With flags.DBPath or
// flags.LexiconFile set it prints the phoneme tokens from that lexicon,
// otherwise the pronunciation from the first dataset that has the word.
func (p *Processor) Lookup(ctx context.Context, w io.Writer) error {
	words, err := p.lookupWords()
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return errors.New("no words given (pass words as arguments or use --batch)")
	}

	switch {
	case p.flags.DBPath != "":
		db, err := lexdb.Open(p.flags.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		return p.lookupTokens(ctx, p.flags.DBPath, db.Phonemes, words, w)
	case p.flags.LexiconFile != "":
		lex, err := lexicon.ReadFile(p.flags.LexiconFile)
		if err != nil {
			return err
		}
		p.logger.Debug("Loaded lexicon", slog.String("file", p.flags.LexiconFile), slog.Int("entries", lex.Len()))
		find := func(_ context.Context, word string) ([]string, bool, error) {
			tokens, ok := lex.Get(word)
			return tokens, ok, nil
		}
		return p.lookupTokens(ctx, p.flags.LexiconFile, find, words, w)
	}

	store, err := lookup.Load(p.flags.DataDir, p.flags.LookupFiles)
	if err != nil {
		return err
	}
	p.logger.Debug("Loaded datasets", slog.Any("sources", store.Sources()))

	find := store.Exact
	if p.flags.Loose {
		find = store.Loose
	}

	for _, word := range words {
		m, ok := find(word)
		if !ok {
			fmt.Fprintf(w, "%s\t%s\n", word, notFound)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", word, m.Source, lookup.Format(m.Value))
	}
	return nil
}

func (p *Processor) lookupTokens(ctx context.Context, source string, find tokenFinder, words []string, w io.Writer) error {
	for _, word := range words {
		tokens, ok, err := find(ctx, word)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok && p.flags.Loose {
			if lower := strings.ToLower(word); lower != word {
				if tokens, ok, err = find(ctx, lower); err != nil {
					return fmt.Errorf("%s: %w", source, err)
				}
			}
		}
		if !ok {
			fmt.Fprintf(w, "%s\t%s\n", word, notFound)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", word, strings.Join(tokens, " "))
	}
	return nil
}

func (p *Processor) lookupWords() ([]string, error) {
	words := append([]string(nil), p.flags.Words...)
	if p.flags.BatchFile != "" {
		fromFile, err := batch.ReadWordFile(p.flags.BatchFile)
		if err != nil {
			return nil, err
		}
		words = append(words, fromFile...)
	}
	return words, nil
}
