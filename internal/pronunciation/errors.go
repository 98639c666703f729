package pronunciation

import "errors"

// Errors returned by the pipeline. Callers match them with errors.Is; the
// wrapping error names the offending file or word.
var (
	ErrNotFound = errors.New("input not found")
	ErrParse    = errors.New("parse error")
	ErrSchema   = errors.New("schema violation")
)
