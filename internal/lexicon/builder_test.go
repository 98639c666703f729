package lexicon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
	"codeberg.org/snonux/phonoprep/internal/testutil"
)

func TestBuild_FirstSeenWinsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := testutil.CreateDataset(t, dir, "a.processed.json", `{"cat": "kæt"}`)
	second := testutil.CreateDataset(t, dir, "b.processed.json", `{"cat": "kat", "dog": "dɒg"}`)

	lex, stats, err := NewBuilder(Options{Inputs: []string{first, second}}, testutil.DiscardLogger()).Build()
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Word: "cat", Phonemes: []string{"k", "æ", "t"}},
		{Word: "dog", Phonemes: []string{"d", "ɒ", "g"}},
	}, lex.Entries())
	assert.Equal(t, Stats{Files: 2, Read: 3, Added: 2, Skipped: 1}, stats)
}

func TestBuild_VariantsUseDefault(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateDataset(t, dir, "gold.processed.json",
		`{"read": {"VERB": "ɹˈɛd", "DEFAULT": "ɹˈid"}, "lead": "lˈid"}`)

	lex, _, err := NewBuilder(Options{Inputs: []string{path}}, testutil.DiscardLogger()).Build()
	require.NoError(t, err)

	got, ok := lex.Get("read")
	require.True(t, ok)
	assert.Equal(t, []string{"ɹ", "ˈi", "d"}, got)
	assert.Equal(t, []string{"read", "lead"}, []string{lex.Entries()[0].Word, lex.Entries()[1].Word})
}

func TestBuild_NFC(t *testing.T) {
	dir := t.TempDir()
	// "e" followed by a combining acute accent
	path := testutil.CreateDataset(t, dir, "x.processed.json", `{"cafe": "kafe\u0301"}`)

	raw, _, err := NewBuilder(Options{Inputs: []string{path}}, testutil.DiscardLogger()).Build()
	require.NoError(t, err)
	got, _ := raw.Get("cafe")
	assert.Equal(t, []string{"k", "a", "f", "e", "\u0301"}, got)

	normalized, _, err := NewBuilder(Options{Inputs: []string{path}, NFC: true}, testutil.DiscardLogger()).Build()
	require.NoError(t, err)
	got, _ = normalized.Get("cafe")
	assert.Equal(t, []string{"k", "a", "f", "\u00e9"}, got)
}

func TestBuild_Errors(t *testing.T) {
	dir := t.TempDir()
	good := testutil.CreateDataset(t, dir, "good.processed.json", `{"cat": "kæt"}`)

	tests := []struct {
		name    string
		inputs  []string
		wantErr error
		wantIn  string
	}{
		{
			name:    "missing DEFAULT",
			inputs:  []string{good, testutil.CreateDataset(t, dir, "nodefault.processed.json", `{"read": {"VERB": "ɹˈid", "PAST": "ɹˈɛd"}}`)},
			wantErr: pronunciation.ErrSchema,
			wantIn:  "nodefault.processed.json",
		},
		{
			name:    "malformed json",
			inputs:  []string{testutil.CreateDataset(t, dir, "broken.processed.json", `{"cat": "kæt"`)},
			wantErr: pronunciation.ErrParse,
			wantIn:  "broken.processed.json",
		},
		{
			name:    "missing file",
			inputs:  []string{good, filepath.Join(dir, "absent.processed.json")},
			wantErr: pronunciation.ErrNotFound,
			wantIn:  "absent.processed.json",
		},
		{
			name:    "non-string pronunciation",
			inputs:  []string{testutil.CreateDataset(t, dir, "null.processed.json", `{"x": null}`)},
			wantErr: pronunciation.ErrSchema,
			wantIn:  `word "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, _, err := NewBuilder(Options{Inputs: tt.inputs}, testutil.DiscardLogger()).Build()
			require.Error(t, err)
			assert.Nil(t, lex)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}
