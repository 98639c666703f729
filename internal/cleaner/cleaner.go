package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

// DefaultSources lists the raw sources in priority order.
var DefaultSources = []string{"us_gold.json", "us_silver.json"}

// processedSuffix replaces the source extension in output file names.
const processedSuffix = ".processed.json"

// Options configures a cleaning run.
type Options struct {
	InputDir  string
	OutputDir string
	Sources   []string
}

// Cleaner runs the cleaning stage over a directory of raw sources.
type Cleaner struct {
	options Options
	logger  *slog.Logger
}

// Summary reports a finished run.
type Summary struct {
	Outputs    []string
	Stats      []Stats
	TotalWords int
}

// NewCleaner creates a cleaner. Empty Sources fall back to DefaultSources.
func NewCleaner(options Options, logger *slog.Logger) *Cleaner {
	if len(options.Sources) == 0 {
		options.Sources = DefaultSources
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{options: options, logger: logger}
}

// OutputName returns the cleaned file name for a source file name.
func OutputName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + processedSuffix
}

// Run cleans every source in order and writes one processed file per source.
// The first missing or malformed source aborts the run.
func (c *Cleaner) Run() (Summary, error) {
	info, err := os.Stat(c.options.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: dataset directory %s", pronunciation.ErrNotFound, c.options.InputDir)
		}
		return Summary{}, fmt.Errorf("failed to stat dataset directory: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("%w: %s is not a directory", pronunciation.ErrNotFound, c.options.InputDir)
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(c.options.OutputDir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	var summary Summary
	used := make(UsedWords)

	for _, source := range c.options.Sources {
		c.logger.Info("Processing", slog.String("file", source))

		src, err := pronunciation.ReadFile(filepath.Join(c.options.InputDir, source))
		if err != nil {
			return summary, err
		}

		var cleaned *pronunciation.Dataset
		var stats Stats
		cleaned, used, stats = Clean(src, used, c.logger)
		stats.Source = source

		outPath := filepath.Join(c.options.OutputDir, OutputName(source))
		if err := pronunciation.WriteFile(outPath, cleaned); err != nil {
			return summary, err
		}

		c.logger.Debug("Wrote cleaned dataset",
			slog.String("file", outPath),
			slog.Int("read", stats.Read),
			slog.Int("kept", stats.Kept),
			slog.Int("duplicates", stats.Duplicates),
			slog.Int("dropped", stats.Dropped),
			slog.Int("collapsed", stats.Collapsed))

		summary.Outputs = append(summary.Outputs, outPath)
		summary.Stats = append(summary.Stats, stats)
	}

	summary.TotalWords = used.Len()
	c.logger.Info("Finished", slog.Int("total_words", summary.TotalWords))
	return summary, nil
}
