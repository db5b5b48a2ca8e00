// Package corpus turns plain text into transition-graph observations.
//
// Text is split into sentences on terminal punctuation, each sentence into
// lowercase word tokens, and every adjacent token pair is recorded as one
// observation of the edge between the two words:
//
//	"The cat sat. The cat ran."  ⇒  the→cat ×2, cat→sat ×1, cat→ran ×1
//
// No edge crosses a sentence boundary. Words are resolved through a
// phonology.Dictionary; tokens the dictionary does not know still enter the
// graph, with empty phoneme data.
//
// A Loader resolves a whole input before touching the graph, so an input
// that fails to decode leaves the graph unchanged.
package corpus
