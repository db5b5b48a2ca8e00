// Package store persists transition graphs.
//
// A snapshot is a versioned JSON document compressed with zstd. Words are
// listed once and edges refer to them by index, so a word's pronunciation is
// stored a single time however many edges touch it. Rhyme-partner flags are
// kept with the words.
//
// Snapshots can be written to plain files (SaveFile/LoadFile) or kept by name
// in an embedded badger database (Badger). Decoding validates the document
// before building a graph: a snapshot with an edge weight below 1, an empty
// word or a dangling index is rejected with ErrCorruptSnapshot.
package store
