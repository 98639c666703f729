package pronunciation

import "iter"

// Dataset maps words to pronunciations and remembers insertion order.
type Dataset struct {
	words   []string
	entries map[string]Value
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{entries: make(map[string]Value)}
}

// Set stores v under word. Overwriting keeps the word's original position.
func (d *Dataset) Set(word string, v Value) {
	if _, ok := d.entries[word]; !ok {
		d.words = append(d.words, word)
	}
	d.entries[word] = v
}

// Get returns the value stored for word.
func (d *Dataset) Get(word string) (Value, bool) {
	v, ok := d.entries[word]
	return v, ok
}

// Has reports whether word is present.
func (d *Dataset) Has(word string) bool {
	_, ok := d.entries[word]
	return ok
}

// Len returns the number of words.
func (d *Dataset) Len() int {
	return len(d.words)
}

// Words returns the words in insertion order.
func (d *Dataset) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// All iterates over the entries in insertion order.
func (d *Dataset) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, w := range d.words {
			if !yield(w, d.entries[w]) {
				return
			}
		}
	}
}
