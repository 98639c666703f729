package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phonoprep/internal"
)

var (
	cleanerBindings = map[string]string{
		"cleaner.outdir":  "outdir",
		"cleaner.sources": "sources",
		"cleaner.archive": "archive",
		"log.format":      "log-format",
	}
	lexiconBindings = map[string]string{
		"lexicon.outfile": "outfile",
		"lexicon.nfc":     "nfc",
		"lexicon.db":      "db",
		"log.format":      "log-format",
	}
	lookupBindings = map[string]string{
		"lookup.data_dir": "data-dir",
		"lookup.sources":  "sources",
		"lookup.loose":    "loose",
		"lookup.db":       "db",
		"lookup.lexicon":  "lexicon",
		"log.format":      "log-format",
	}
)

// CreateCleanerCommand creates the cleaner root command
func CreateCleanerCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleaner <dataset_dir>",
		Short: "Clean raw pronunciation datasets into lookup tables",
		Long: `cleaner removes invalid and duplicate entries from the raw
word to pronunciation sources and writes one cleaned JSON file per source.

Sources are read in priority order (us_gold.json, then us_silver.json); a word
accepted from an earlier source is dropped from every later one.

Examples:
  cleaner data                 # writes out/us_gold.processed.json, out/us_silver.processed.json
  cleaner data -o build -v     # custom output directory, debug logging`,
		Args:          cobra.ExactArgs(1),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupCommonFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.OutputDir, "outdir", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringSliceVar(&flags.Sources, "sources", flags.Sources, "Source files in priority order")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output directory to <parent>/archive before writing")
	bindFlagsToViper(cmd, cleanerBindings)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := InitConfig(flags.CfgFile); err != nil {
			return err
		}
		flags.DatasetDir = args[0]
		flags.OutputDir = viper.GetString("cleaner.outdir")
		flags.Sources = viper.GetStringSlice("cleaner.sources")
		flags.Archive = viper.GetBool("cleaner.archive")
		startLogging(flags)
		return nil
	}

	return cmd
}

// CreateLexiconCommand creates the lexicon-builder root command
func CreateLexiconCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon-builder <inputfiles>",
		Short: "Merge cleaned datasets into a training lexicon",
		Long: `lexicon-builder merges cleaned datasets (output of cleaner) into one
tab separated training lexicon with pronunciations split into phonemes.

inputfiles is a comma separated list; earlier files take precedence.

Examples:
  lexicon-builder out/us_gold.processed.json,out/us_silver.processed.json
  lexicon-builder a.json,b.json -o lexicon.dict --db lexicon.db`,
		Args:          cobra.ExactArgs(1),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupCommonFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.OutFile, "outfile", "o", flags.OutFile, "Output lexicon file")
	cmd.Flags().BoolVar(&flags.NFC, "nfc", false, "Normalize pronunciations to Unicode NFC before splitting")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "Also export the lexicon to this SQLite database")
	bindFlagsToViper(cmd, lexiconBindings)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := InitConfig(flags.CfgFile); err != nil {
			return err
		}
		flags.InputFiles = splitList(args[0])
		flags.OutFile = viper.GetString("lexicon.outfile")
		flags.NFC = viper.GetBool("lexicon.nfc")
		flags.DBPath = viper.GetString("lexicon.db")
		startLogging(flags)
		return nil
	}

	return cmd
}

// CreateLookupCommand creates the lookup root command
func CreateLookupCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [word...]",
		Short: "Look up pronunciations in cleaned datasets",
		Long: `lookup prints the pronunciation of each word from the first cleaned
dataset that contains it, or the phoneme tokens from an exported lexicon
database (--db) or training lexicon file (--lexicon).

Examples:
  lookup cat dog                  # exact lookup in out/*.processed.json
  lookup --loose Paris            # fall back to the lowercased word
  lookup --batch words.txt --db lexicon.db
  lookup --lexicon out/training-lexicon.dict cat`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupCommonFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.DataDir, "data-dir", "d", flags.DataDir, "Directory containing cleaned datasets")
	cmd.Flags().StringSliceVar(&flags.LookupFiles, "sources", flags.LookupFiles, "Cleaned dataset files in priority order")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Read words from file (one per line)")
	cmd.Flags().BoolVar(&flags.Loose, "loose", false, "Retry with the lowercased word when there is no exact match")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "Look up phoneme tokens in this SQLite lexicon database")
	cmd.Flags().StringVar(&flags.LexiconFile, "lexicon", "", "Look up phoneme tokens in this training lexicon file")
	bindFlagsToViper(cmd, lookupBindings)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := InitConfig(flags.CfgFile); err != nil {
			return err
		}
		flags.Words = args
		flags.DataDir = viper.GetString("lookup.data_dir")
		flags.LookupFiles = viper.GetStringSlice("lookup.sources")
		flags.Loose = viper.GetBool("lookup.loose")
		flags.DBPath = viper.GetString("lookup.db")
		flags.LexiconFile = viper.GetString("lookup.lexicon")
		startLogging(flags)
		return nil
	}

	return cmd
}

func setupCommonFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonoprep.yaml)")

	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")
}

func startLogging(flags *Flags) {
	flags.LogFormat = viper.GetString("log.format")
	logger := NewLogger(flags.Verbose, flags.LogFormat)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", slog.String("file", used))
	}
}
