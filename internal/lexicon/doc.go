// Package lexicon builds the flat training lexicon consumed by the phoneme
// transcription trainer. Cleaned datasets are merged first-seen-wins, each
// pronunciation is split into phoneme tokens with stress markers fused onto
// the following token, and the result is written one word per line as
// "word<TAB>p1 p2 p3".
package lexicon
