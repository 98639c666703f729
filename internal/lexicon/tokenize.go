package lexicon

const (
	primaryStress   = 'ˈ'
	secondaryStress = 'ˌ'
)

// IsStressMarker reports whether r is a primary or secondary stress marker.
func IsStressMarker(r rune) bool {
	return r == primaryStress || r == secondaryStress
}

// SplitPhonemes splits a phonemic string into one token per code point. A
// stress marker is held and prepended to the next token; a marker with no
// following character is dropped.
func SplitPhonemes(phonemes string) []string {
	tokens := make([]string, 0, len(phonemes))
	var stress rune
	for _, r := range phonemes {
		switch {
		case IsStressMarker(r):
			stress = r
		case stress != 0:
			tokens = append(tokens, string(stress)+string(r))
			stress = 0
		default:
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}
