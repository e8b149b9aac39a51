package correlate

import (
	"fmt"
	"regexp"
	"strings"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"

	"fortio.org/safecast"
)

// expectPattern matches inline expectation sigils:
//
//	//~ ERROR msg        same line
//	//~^ ERROR msg       one line up (more ^, more lines)
//	//~| ERROR msg       same line as the previous non-follow expectation
//	//[rev]~^ ERROR msg  revision scoped
var expectPattern = regexp.MustCompile(`//(?:\[(?P<revs>[\w\-,]+)\])?~(?P<adjust>\||\^*)`)

// ExpectationMatch reports where the inline expectation comment begins
// on the line, so the emitter can splice it out.
func ExpectationMatch(line string) (start int, ok bool) {
	loc := expectPattern.FindStringIndex(line)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}

// scanExpectations walks every source line and collects inline
// expectation records. Unresolvable records are reported and skipped.
func scanExpectations(f *source.File, r diag.Reporter) []Record {
	var out []Record
	// Line of the last expectation that was not a `|` follow; `|`
	// chains re-anchor to it.
	lastAnchor := uint32(0)

	numLines := f.NumLines()
	for lineNum := uint32(1); lineNum <= numLines; lineNum++ {
		line := f.GetLine(lineNum)
		m := expectPattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		revs := group(line, m, expectPattern.SubexpIndex("revs"))
		adjust := group(line, m, expectPattern.SubexpIndex("adjust"))
		tail := strings.TrimSpace(line[m[1]:])

		kind := KindUnspecified
		msg := tail
		if first, rest, found := strings.Cut(tail, " "); found || tail != "" {
			if k, ok := ParseKind(first); ok {
				kind = k
				msg = strings.TrimSpace(rest)
			}
		}
		if msg == "" {
			diag.ReportWarning(r, diag.CorrEmptyExpectation, f.LineSpan(lineNum),
				"expectation carries no message text")
		}

		var target uint32
		var rel int32
		switch {
		case adjust == "|":
			if lastAnchor == 0 {
				diag.ReportWarning(r, diag.CorrFollowWithoutAnchor, f.LineSpan(lineNum),
					"`//~|` without a preceding `//~` or `//~^` expectation")
				continue
			}
			target = lastAnchor
			iTarget, err := safecast.Conv[int32](target)
			if err != nil {
				panic(fmt.Errorf("line overflow: %w", err))
			}
			iLine, err := safecast.Conv[int32](lineNum)
			if err != nil {
				panic(fmt.Errorf("line overflow: %w", err))
			}
			rel = iTarget - iLine
		default:
			up, err := safecast.Conv[uint32](len(adjust))
			if err != nil {
				panic(fmt.Errorf("adjust overflow: %w", err))
			}
			if up >= lineNum {
				diag.ReportWarning(r, diag.CorrLineOutOfBounds, f.LineSpan(lineNum),
					fmt.Sprintf("expectation points %d lines up from line %d", up, lineNum))
				continue
			}
			target = lineNum - up
			rel = -int32(up) //nolint:gosec // bounded by lineNum
			lastAnchor = target
		}

		for _, revision := range splitRevisions(revs) {
			out = append(out, Record{
				Line:           target,
				RelLine:        rel,
				Kind:           kind,
				Message:        msg,
				Revision:       revision,
				AnnotationLine: lineNum,
			})
		}
	}

	return out
}

func group(line string, m []int, idx int) string {
	if idx < 0 || m[2*idx] < 0 {
		return ""
	}
	return line[m[2*idx]:m[2*idx+1]]
}

// splitRevisions expands a comma list into labels; no qualifier yields
// the single unscoped label "".
func splitRevisions(revs string) []string {
	if revs == "" {
		return []string{""}
	}
	parts := strings.Split(revs, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
