package cleaner

import (
	"log/slog"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

// noneLabel marks variants without a usable tag in the raw sources.
const noneLabel = "None"

// UsedWords holds the words accepted so far in a run together with the
// cleaned value each was accepted with.
type UsedWords map[string]pronunciation.Value

// Len returns the number of accepted words.
func (u UsedWords) Len() int {
	return len(u)
}

// Stats counts what happened to the words of one source.
type Stats struct {
	Source     string
	Read       int
	Kept       int
	Duplicates int
	Dropped    int
	Collapsed  int
}

// Clean filters one source against the words accepted from higher priority
// sources. The accumulator is extended with every word kept and returned.
func Clean(src *pronunciation.Dataset, used UsedWords, logger *slog.Logger) (*pronunciation.Dataset, UsedWords, Stats) {
	if used == nil {
		used = make(UsedWords)
	}
	out := pronunciation.NewDataset()
	var stats Stats

	for word, raw := range src.All() {
		stats.Read++
		cleaned, ok, collapsed := cleanValue(raw)

		if prev, seen := used[word]; seen {
			stats.Duplicates++
			if ok && !pronunciation.Equal(prev, cleaned) {
				logger.Warn("Word already in higher ranked dataset with a different pronunciation, skipping",
					slog.String("word", word))
			} else {
				logger.Debug("Word already in higher ranked dataset, skipping", slog.String("word", word))
			}
			continue
		}

		if !ok {
			stats.Dropped++
			logger.Debug("Removed word: no valid phonemes", slog.String("word", word))
			continue
		}
		if collapsed {
			stats.Collapsed++
		}

		out.Set(word, cleaned)
		used[word] = cleaned
		stats.Kept++
	}

	return out, used, stats
}

// cleanValue normalizes one value. ok is false when nothing usable is left;
// collapsed is set when a variant set was reduced to a single pronunciation.
func cleanValue(v pronunciation.Value) (cleaned pronunciation.Value, ok, collapsed bool) {
	variants, isVariants := v.(pronunciation.Variants)
	if !isVariants {
		return v, true, false
	}

	valid := pronunciation.Variants{}
	for _, variant := range variants {
		if variant.Label == noneLabel || variant.Missing || variant.Pronunciation == "" {
			continue
		}
		valid = append(valid, variant)
	}

	switch len(valid) {
	case 0:
		return nil, false, false
	case 1:
		return pronunciation.Text(valid[0].Pronunciation), true, true
	default:
		return valid, true, false
	}
}
