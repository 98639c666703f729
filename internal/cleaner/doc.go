// Package cleaner turns raw word to pronunciation sources into cleaned
// lookup tables. Sources are processed in priority order and a word accepted
// from an earlier source is removed from every later one.
package cleaner
