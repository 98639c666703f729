package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/phonoprep/internal/pronunciation"
)

const maxLineSize = 1024 * 1024

// WriteFile writes the lexicon to path. Data goes to a temporary file in the
// same directory which replaces path only once it is complete.
func WriteFile(path string, lex *Lexicon) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary lexicon file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := lex.WriteTo(tmp); err != nil {
		return fmt.Errorf("failed to write lexicon: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set lexicon permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close lexicon: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move lexicon into place: %w", err)
	}
	return nil
}

// ReadFile parses a lexicon file written by WriteFile. Tokens are split on
// whitespace, so a token that is itself a space does not survive.
func ReadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", pronunciation.ErrNotFound, err)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	lex := New()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		word, phonemes, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: line has no tab separator", pronunciation.ErrParse, path, lineNo)
		}
		lex.Add(word, strings.Fields(phonemes))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return lex, nil
}
