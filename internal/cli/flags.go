package cli

import "codeberg.org/snonux/phonoprep/internal/cleaner"

// DefaultLookupFiles lists the cleaned datasets consulted by lookup, in
// priority order.
var DefaultLookupFiles = []string{"us_gold.processed.json", "us_silver.processed.json"}

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Verbose   bool
	LogFormat string

	// Cleaner flags
	DatasetDir string
	OutputDir  string
	Sources    []string
	Archive    bool

	// Lexicon builder flags
	InputFiles []string
	OutFile    string
	NFC        bool
	DBPath     string

	// Lookup flags
	Words       []string
	DataDir     string
	LookupFiles []string
	BatchFile   string
	Loose       bool
	LexiconFile string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogFormat:   "text",
		OutputDir:   "out",
		Sources:     append([]string(nil), cleaner.DefaultSources...),
		OutFile:     "out/training-lexicon.dict",
		DataDir:     "out",
		LookupFiles: append([]string(nil), DefaultLookupFiles...),
	}
}
