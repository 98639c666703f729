package lookup

import (
	"path/filepath"
	"strings"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

// Source is a named cleaned dataset.
type Source struct {
	Name string
	Data *pronunciation.Dataset
}

// Match is a successful lookup.
type Match struct {
	Word   string
	Source string
	Value  pronunciation.Value
}

// Store holds sources, highest priority first.
type Store struct {
	sources []Source
}

// New creates a store over sources in the given order.
func New(sources ...Source) *Store {
	return &Store{sources: sources}
}

// Load reads the named files from dir in order.
func Load(dir string, files []string) (*Store, error) {
	s := &Store{}
	for _, name := range files {
		ds, err := pronunciation.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		s.sources = append(s.sources, Source{Name: SourceName(name), Data: ds})
	}
	return s, nil
}

// SourceName derives a dataset name from a cleaned file name, e.g.
// "us_gold.processed.json" becomes "us_gold".
func SourceName(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, ".processed")
}

// Sources returns the source names in priority order.
func (s *Store) Sources() []string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name
	}
	return names
}

// Exact returns the entry for word from the first source containing it.
func (s *Store) Exact(word string) (Match, bool) {
	for _, src := range s.sources {
		if m, ok := src.exact(word); ok {
			return m, true
		}
	}
	return Match{}, false
}

// Loose tries each source in turn, first with word as given and then
// lowercased, so a lowercase hit in a higher source beats an exact hit in a
// lower one.
func (s *Store) Loose(word string) (Match, bool) {
	lower := strings.ToLower(word)
	for _, src := range s.sources {
		if m, ok := src.exact(word); ok {
			return m, true
		}
		if m, ok := src.exact(lower); ok {
			return m, true
		}
	}
	return Match{}, false
}

func (src Source) exact(word string) (Match, bool) {
	v, ok := src.Data.Get(word)
	if !ok {
		return Match{}, false
	}
	return Match{Word: word, Source: src.Name, Value: v}, true
}

// Format renders a value on one line. Variants are written as
// label=pronunciation pairs separated by spaces.
func Format(v pronunciation.Value) string {
	switch v := v.(type) {
	case pronunciation.Scalar:
		if v.IsText() {
			return v.Text
		}
		return v.Raw()
	case pronunciation.Variants:
		parts := make([]string, 0, len(v))
		for _, variant := range v {
			if variant.Missing {
				continue
			}
			parts = append(parts, variant.Label+"="+variant.Pronunciation)
		}
		return strings.Join(parts, " ")
	}
	return ""
}
