package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadWordFile reads words from a file, one per line.
// Blank lines and lines starting with '#' are ignored, surrounding
// whitespace is trimmed and Windows line endings are accepted.
func ReadWordFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return words, nil
}
