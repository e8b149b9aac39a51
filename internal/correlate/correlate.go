package correlate

import (
	"fmt"

	"dejaconv/internal/diag"
	"dejaconv/internal/header"
	"dejaconv/internal/source"
)

// Correlate produces the expected-diagnostic records for one source
// file. Inline expectations are scanned from the source body; when a
// companion stderr file is present its records enrich matching inline
// expectations with error codes and columns, and records with no inline
// counterpart are recovered as stderr-only records. Records whose line
// falls outside the source bounds are reported and dropped, one by one.
//
// directives is the parsed header of the same file; it supplies the set
// of declared revisions used to validate revision-scoped records.
func Correlate(f *source.File, errFile *source.File, directives []header.Directive, r diag.Reporter) []Record {
	records := scanExpectations(f, r)

	declared := header.DeclaredRevisions(directives)
	records = checkRevisions(records, declared, f, r)

	if errFile == nil {
		return records
	}

	numLines := f.NumLines()
	for _, sr := range parseStderr(string(errFile.Content), errFile, r) {
		if sr.Line == 0 || sr.Line > numLines {
			diag.ReportWarning(r, diag.CorrLineOutOfBounds, source.Span{File: errFile.ID},
				fmt.Sprintf("stderr record %q points at line %d, file has %d lines",
					sr.Message, sr.Line, numLines))
			continue
		}
		if !attach(records, sr) {
			records = append(records, Record{
				Line:       sr.Line,
				Column:     sr.Column,
				Kind:       sr.Kind,
				Message:    sr.Message,
				Code:       sr.Code,
				Revision:   sr.Revision,
				FromStderr: true,
			})
		}
	}

	return records
}

// attach enriches the first matching inline record in place.
// A stderr record matches an inline record when they agree on line and
// revision scope, or when the messages are identical.
func attach(records []Record, sr stderrRecord) bool {
	for i := range records {
		rec := &records[i]
		if rec.FromStderr {
			continue
		}
		sameLine := rec.Line == sr.Line && revisionCompatible(rec.Revision, sr.Revision)
		sameMsg := rec.Message != "" && rec.Message == sr.Message
		if !sameLine && !sameMsg {
			continue
		}
		if rec.Code == "" {
			rec.Code = sr.Code
		}
		if rec.Column == 0 {
			rec.Column = sr.Column
		}
		// Inline expectations are often truncated; the stderr file
		// carries the authoritative text.
		if rec.Message == "" || (sameLine && len(sr.Message) > len(rec.Message)) {
			rec.Message = sr.Message
		}
		return true
	}
	return false
}

func revisionCompatible(a, b string) bool {
	return a == "" || b == "" || a == b
}

// checkRevisions drops records scoped to a revision the file never
// declares, with a warning each.
func checkRevisions(records []Record, declared []string, f *source.File, r diag.Reporter) []Record {
	if len(records) == 0 {
		return records
	}
	known := make(map[string]bool, len(declared))
	for _, label := range declared {
		known[label] = true
	}

	out := records[:0]
	for _, rec := range records {
		if rec.Revision != "" && !known[rec.Revision] {
			diag.ReportWarning(r, diag.MapUnknownRevision, f.LineSpan(rec.AnnotationLine),
				fmt.Sprintf("expectation scoped to undeclared revision %q", rec.Revision))
			continue
		}
		out = append(out, rec)
	}
	return out
}
