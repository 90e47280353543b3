// Package header implements the SPDX header grammar and the single-pass file
// processor built on it.
//
// A header is the contiguous run of leading comment and blank lines that
// carries an SPDX declaration. The grammar is deliberately approximate: lines
// are classified by comment marker and blank-ness, not parsed by language
// syntax. The run must open with an SPDX-marked comment; ordinary comments
// ahead of any SPDX marker make the whole prefix body content.
//
// The Processor reads a file exactly once, allows repeated in-memory header
// edits, and persists the result with an atomic sibling-file rename so a
// failed save never corrupts the target.
package header
