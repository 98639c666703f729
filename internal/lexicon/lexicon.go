package lexicon

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one word with its phoneme tokens.
type Entry struct {
	Word     string
	Phonemes []string
}

// Line renders the entry in lexicon file format without the newline.
func (e Entry) Line() string {
	return e.Word + "\t" + strings.Join(e.Phonemes, " ")
}

// Lexicon is an insertion ordered set of entries keyed by word.
type Lexicon struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{index: make(map[string]int)}
}

// Add appends an entry unless the word is already present. It reports
// whether the entry was added.
func (l *Lexicon) Add(word string, phonemes []string) bool {
	if _, ok := l.index[word]; ok {
		return false
	}
	l.index[word] = len(l.entries)
	l.entries = append(l.entries, Entry{Word: word, Phonemes: phonemes})
	return true
}

// Has reports whether word is present.
func (l *Lexicon) Has(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Get returns the phonemes stored for word.
func (l *Lexicon) Get(word string) ([]string, bool) {
	i, ok := l.index[word]
	if !ok {
		return nil, false
	}
	return l.entries[i].Phonemes, true
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// WriteTo writes every entry as one newline terminated line.
func (l *Lexicon) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range l.entries {
		written, err := bw.WriteString(e.Line() + "\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
