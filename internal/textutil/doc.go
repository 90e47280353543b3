// Package textutil provides fuzzy string matching for short identifiers.
//
// Identifiers are fingerprinted as character-bigram frequency vectors and
// compared by cosine similarity. Bigrams work better than word tokens for
// license keys like "Apache-2.0", where the interesting differences live
// inside a single hyphenated token.
package textutil
