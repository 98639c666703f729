// Package lookup answers word queries against cleaned datasets in priority
// order, the way the phonemizer runtime consults its dictionaries.
package lookup
