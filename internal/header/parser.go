package header

import (
	"fmt"
	"regexp"
	"strings"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"
)

// directivePattern matches one header directive:
//
//	//@ name
//	//@ name: args
//	//@[rev1,rev2] name: args
var directivePattern = regexp.MustCompile(
	`^\s*//@(?:\[(?P<revs>[\w\-,]+)\])?\s*(?P<name>[A-Za-z0-9_][\w-]*)\s*(?::\s*(?P<args>.*))?$`)

// directivePrefix recognizes a line that is meant to be a directive even
// when its body does not parse.
var directivePrefix = regexp.MustCompile(`^\s*//@`)

// commentLine matches any ordinary line comment.
var commentLine = regexp.MustCompile(`^\s*//`)

// Parse scans the leading comment block of the file and returns the
// directives in file order. Scanning stops at the first line that is
// neither blank, nor a comment, nor a directive. Malformed directive
// bodies are reported through r and skipped; parsing continues.
func Parse(f *source.File, r diag.Reporter) []Directive {
	var out []Directive

	numLines := f.NumLines()
	for lineNum := uint32(1); lineNum <= numLines; lineNum++ {
		line := f.GetLine(lineNum)
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}
		if !commentLine.MatchString(line) {
			// First code line ends the header.
			break
		}
		if !directivePrefix.MatchString(line) {
			// Plain comment inside the header.
			continue
		}

		m := directivePattern.FindStringSubmatch(line)
		if m == nil {
			diag.ReportWarning(r, diag.HdrMalformedDirective, f.LineSpan(lineNum),
				fmt.Sprintf("cannot parse directive line %q", trimmed))
			continue
		}

		revs := m[directivePattern.SubexpIndex("revs")]
		name := m[directivePattern.SubexpIndex("name")]
		args := strings.TrimSpace(m[directivePattern.SubexpIndex("args")])

		if name == "" {
			diag.ReportWarning(r, diag.HdrEmptyDirective, f.LineSpan(lineNum),
				"directive has no name")
			continue
		}

		out = append(out, expand(f, lineNum, revs, name, args, r)...)
	}

	return out
}

// expand splits a comma-separated revision qualifier into one Directive
// per revision label.
func expand(f *source.File, lineNum uint32, revs, name, args string, r diag.Reporter) []Directive {
	span := f.LineSpan(lineNum)
	if revs == "" {
		return []Directive{{Name: name, Args: args, Line: lineNum, Span: span}}
	}

	labels := strings.Split(revs, ",")
	out := make([]Directive, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			diag.ReportWarning(r, diag.HdrBadRevisionList, span,
				fmt.Sprintf("empty revision label in %q", revs))
			continue
		}
		out = append(out, Directive{
			Name:     name,
			Revision: label,
			Args:     args,
			Line:     lineNum,
			Span:     span,
		})
	}
	return out
}
