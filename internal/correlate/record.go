// Package correlate aligns expected-diagnostic records with the source
// lines that produce them.
//
// Records come from two places: inline compiletest expectations embedded
// in the source body (`//~ ERROR msg` and its `^`/`|` variants) and the
// optional companion stderr file. Both resolve to absolute lines of the
// original, untranslated source; records that cannot be resolved are
// per-record correlation failures, never file-fatal. Normalization of
// message text is deliberately left to the emitter.
package correlate

// Record is one expected diagnostic, re-keyed to its source line.
type Record struct {
	// Line is the 1-based source line the compiler message points at.
	Line uint32

	// RelLine is the DejaGnu anchor offset of the annotation relative
	// to the line it will be written on: 0 means same line, negative
	// values point that many lines up. Mirrors the inline `^` count.
	RelLine int32

	// Column is 1-based; 0 when unknown.
	Column uint32

	Kind    Kind
	Message string

	// Code is the upstream error code (E0308 style), when known.
	Code string

	// Revision scopes the record to one named revision; empty applies
	// to every revision the file declares.
	Revision string

	// FromStderr marks records recovered solely from the stderr file,
	// with no inline annotation in the source.
	FromStderr bool

	// AnnotationLine is the source line carrying the inline
	// expectation comment; 0 for stderr-only records.
	AnnotationLine uint32
}
