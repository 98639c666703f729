package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCreateCommands_Flags(t *testing.T) {
	tests := []struct {
		name  string
		cmd   *cobra.Command
		use   string
		flags []string
		short map[string]string
	}{
		{
			name:  "cleaner",
			cmd:   CreateCleanerCommand(NewFlags()),
			use:   "cleaner <dataset_dir>",
			flags: []string{"outdir", "verbose", "sources", "archive", "log-format"},
			short: map[string]string{"o": "outdir", "v": "verbose"},
		},
		{
			name:  "lexicon-builder",
			cmd:   CreateLexiconCommand(NewFlags()),
			use:   "lexicon-builder <inputfiles>",
			flags: []string{"outfile", "verbose", "nfc", "db", "log-format"},
			short: map[string]string{"o": "outfile", "v": "verbose"},
		},
		{
			name:  "lookup",
			cmd:   CreateLookupCommand(NewFlags()),
			use:   "lookup [word...]",
			flags: []string{"data-dir", "sources", "batch", "loose", "db", "lexicon", "verbose"},
			short: map[string]string{"d": "data-dir", "v": "verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Use != tt.use {
				t.Errorf("Expected Use to be %q, got %q", tt.use, tt.cmd.Use)
			}
			if tt.cmd.PersistentFlags().Lookup("config") == nil {
				t.Error("Expected persistent flag config to exist")
			}
			for _, name := range tt.flags {
				if tt.cmd.Flags().Lookup(name) == nil {
					t.Errorf("Expected flag %s to exist", name)
				}
			}
			for short, long := range tt.short {
				var flag *pflag.Flag = tt.cmd.Flags().ShorthandLookup(short)
				if flag == nil || flag.Name != long {
					t.Errorf("Expected -%s to be shorthand for --%s", short, long)
				}
			}
		})
	}
}

func TestCleanerCommand_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateCleanerCommand(flags)
	if err := execute(t, cmd, "data"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.DatasetDir != "data" {
		t.Errorf("Expected dataset dir data, got %s", flags.DatasetDir)
	}
	if flags.OutputDir != "out" {
		t.Errorf("Expected default outdir out, got %s", flags.OutputDir)
	}
	if len(flags.Sources) != 2 || flags.Sources[0] != "us_gold.json" {
		t.Errorf("Unexpected sources: %v", flags.Sources)
	}
}

func TestCleanerCommand_RequiresDatasetDir(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if err := execute(t, CreateCleanerCommand(NewFlags())); err == nil {
		t.Error("Expected error without dataset_dir")
	}
}

func TestLexiconCommand_SplitsInputFiles(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateLexiconCommand(flags)
	if err := execute(t, cmd, "a.json,b.json,", "-o", "lex.dict", "--nfc"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(flags.InputFiles) != 2 || flags.InputFiles[0] != "a.json" || flags.InputFiles[1] != "b.json" {
		t.Errorf("Unexpected input files: %v", flags.InputFiles)
	}
	if flags.OutFile != "lex.dict" {
		t.Errorf("Expected outfile lex.dict, got %s", flags.OutFile)
	}
	if !flags.NFC {
		t.Error("Expected NFC to be enabled")
	}
}

func TestLexiconCommand_ConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "phonoprep.yaml")
	content := `lexicon:
  outfile: /tmp/from-config.dict
  db: /tmp/from-config.db
log:
  format: json`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	flags := NewFlags()
	cmd := CreateLexiconCommand(flags)
	if err := execute(t, cmd, "a.json", "--config", cfgPath); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.OutFile != "/tmp/from-config.dict" {
		t.Errorf("Expected outfile from config, got %s", flags.OutFile)
	}
	if flags.DBPath != "/tmp/from-config.db" {
		t.Errorf("Expected db from config, got %s", flags.DBPath)
	}
	if flags.LogFormat != "json" {
		t.Errorf("Expected log format json, got %s", flags.LogFormat)
	}
}

func TestLexiconCommand_FlagOverridesConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "phonoprep.yaml")
	if err := os.WriteFile(cfgPath, []byte("lexicon:\n  outfile: from-config.dict\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	flags := NewFlags()
	cmd := CreateLexiconCommand(flags)
	if err := execute(t, cmd, "a.json", "--config", cfgPath, "--outfile", "from-flag.dict"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.OutFile != "from-flag.dict" {
		t.Errorf("Expected flag to win over config, got %s", flags.OutFile)
	}
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if err := InitConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestInitConfig_Environment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("PHONOPREP_LOG_FORMAT", "json")
	if err := InitConfig(""); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if viper.GetString("log.format") != "json" {
		t.Error("Environment variable not properly loaded")
	}
}

func TestLookupCommand_Words(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateLookupCommand(flags)
	if err := execute(t, cmd, "cat", "dog", "--loose", "-d", "build", "--lexicon", "lex.dict"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(flags.Words) != 2 || flags.Words[1] != "dog" {
		t.Errorf("Unexpected words: %v", flags.Words)
	}
	if !flags.Loose {
		t.Error("Expected loose lookup")
	}
	if flags.DataDir != "build" {
		t.Errorf("Expected data dir build, got %s", flags.DataDir)
	}
	if flags.LexiconFile != "lex.dict" {
		t.Errorf("Expected lexicon file lex.dict, got %s", flags.LexiconFile)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a.json", []string{"a.json"}},
		{"a.json,b.json", []string{"a.json", "b.json"}},
		{",a.json,,b.json,", []string{"a.json", "b.json"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
				}
			}
		})
	}
}
