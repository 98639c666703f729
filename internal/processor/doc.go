// Package processor connects the parsed command-line flags to the pipeline
// packages. It runs the cleaner, builds and exports the training lexicon,
// and answers lookups, logging progress along the way. This package serves
// as the main coordinator between all other components.
package processor
