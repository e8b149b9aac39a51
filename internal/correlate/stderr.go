package correlate

import (
	"fmt"
	"regexp"
	"strings"

	"fortio.org/safecast"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"
)

// revisionMarker separates per-revision blocks inside a combined stderr
// file: `--- revision: a ---`. A file without markers applies to every
// revision declared by the source.
var revisionMarker = regexp.MustCompile(`^---\s*revision:\s*(?P<label>[\w-]+)\s*---$`)

// recordHeader matches the first line of a record:
// `error[E0308]: mismatched types` or `warning: unused variable`.
var recordHeader = regexp.MustCompile(
	`^(?P<sev>error|warning|note|help)(?:\[(?P<code>E\d{4})\])?:\s*(?P<msg>.+)$`)

// recordLocator matches the arrow line that follows a header:
// `  --> $DIR/file.rs:12:5`.
var recordLocator = regexp.MustCompile(`^\s*-->\s*(?P<path>.+?):(?P<line>\d+):(?P<col>\d+)\s*$`)

// stderrRecord is one parsed block of the stderr file, before merging
// with inline expectations.
type stderrRecord struct {
	Kind     Kind
	Code     string
	Message  string
	Line     uint32
	Column   uint32
	Revision string
}

// parseStderr extracts records from the companion stderr file. Headers
// without a locator line (summary lines like `error: aborting due to 2
// previous errors`) are skipped silently; locators with unparseable
// numbers are reported per record.
func parseStderr(content string, errFile *source.File, r diag.Reporter) []stderrRecord {
	var out []stderrRecord
	revision := ""

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		if m := revisionMarker.FindStringSubmatch(lines[i]); m != nil {
			revision = m[revisionMarker.SubexpIndex("label")]
			continue
		}

		h := recordHeader.FindStringSubmatch(lines[i])
		if h == nil {
			continue
		}
		if i+1 >= len(lines) {
			break
		}
		loc := recordLocator.FindStringSubmatch(lines[i+1])
		if loc == nil {
			// Header without a source location: summary or note
			// attached to the previous record. Nothing to anchor.
			continue
		}

		kind, _ := ParseKind(h[recordHeader.SubexpIndex("sev")])
		line64, err := parseUint32(loc[recordLocator.SubexpIndex("line")])
		if err != nil {
			reportStderrIssue(r, errFile, i, fmt.Sprintf("bad line number in locator %q", lines[i+1]))
			continue
		}
		col64, err := parseUint32(loc[recordLocator.SubexpIndex("col")])
		if err != nil {
			reportStderrIssue(r, errFile, i, fmt.Sprintf("bad column number in locator %q", lines[i+1]))
			continue
		}

		out = append(out, stderrRecord{
			Kind:     kind,
			Code:     h[recordHeader.SubexpIndex("code")],
			Message:  strings.TrimSpace(h[recordHeader.SubexpIndex("msg")]),
			Line:     line64,
			Column:   col64,
			Revision: revision,
		})
		i++ // locator consumed
	}

	return out
}

func parseUint32(s string) (uint32, error) {
	var n uint64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return safecast.Conv[uint32](n)
}

func reportStderrIssue(r diag.Reporter, errFile *source.File, lineIdx int, msg string) {
	span := source.Span{}
	if errFile != nil {
		lineNum, err := safecast.Conv[uint32](lineIdx + 1)
		if err == nil {
			span = errFile.LineSpan(lineNum)
		}
	}
	diag.ReportWarning(r, diag.CorrMalformedRecord, span, msg)
}
