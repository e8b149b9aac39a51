package diag

import (
	"dejaconv/internal/source"
)

// Note is a secondary message anchored to its own span.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single translator finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note attached.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
