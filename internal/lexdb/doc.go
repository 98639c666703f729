// Package lexdb stores a training lexicon in a SQLite database so single
// words can be queried without scanning the flat lexicon file.
package lexdb
