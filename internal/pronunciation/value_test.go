package pronunciation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    string
		wantErr error
	}{
		{"scalar", Text("kæt"), "kæt", nil},
		{"empty scalar", Text(""), "", nil},
		{"default variant", Variants{{Label: "UK", Pronunciation: "kɑːt"}, {Label: "DEFAULT", Pronunciation: "kæt"}}, "kæt", nil},
		{"missing default", Variants{{Label: "IPA", Pronunciation: "kæt"}, {Label: "UK", Pronunciation: "kɑːt"}}, "", ErrSchema},
		{"lowercase default is not default", Variants{{Label: "default", Pronunciation: "kæt"}}, "", ErrSchema},
		{"null default", Variants{{Label: "DEFAULT", Missing: true}}, "", ErrSchema},
		{"numeric scalar", Literal("7"), "", ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.value)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataset_SetKeepsPosition(t *testing.T) {
	ds := NewDataset()
	ds.Set("a", Text("1"))
	ds.Set("b", Text("2"))
	ds.Set("a", Text("3"))

	assert.Equal(t, []string{"a", "b"}, ds.Words())
	assert.Equal(t, 2, ds.Len())

	var seen []string
	for w := range ds.All() {
		seen = append(seen, w)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Text("a"), Text("a")))
	assert.False(t, Equal(Text("a"), Text("b")))
	assert.False(t, Equal(Text("a"), Variants{{Label: "DEFAULT", Pronunciation: "a"}}))
	assert.True(t, Equal(Variants{{Label: "X", Pronunciation: "a"}}, Variants{{Label: "X", Pronunciation: "a"}}))
	assert.False(t, Equal(Literal("0"), Text("0")))
}
