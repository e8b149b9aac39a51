// Package emit renders the translated output for one file: original
// lines preserved verbatim, DejaGnu annotation lines inserted for the
// parsed directives and correlated diagnostic records.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"dejaconv/internal/catalog"
	"dejaconv/internal/correlate"
	"dejaconv/internal/dejagnu"
	"dejaconv/internal/diag"
	"dejaconv/internal/header"
	"dejaconv/internal/source"
)

// entry is one line of the final output before anchors are resolved.
type entry struct {
	text string // final text, unless ann is set
	orig uint32 // original line number carried by this entry, 0 otherwise
	ann  *annotation
}

// annotation is an expectation line whose DejaGnu anchor can only be
// computed once the final line layout is known.
type annotation struct {
	rec    correlate.Record
	prefix string // code preceding a same-line expectation trailer
	target uint32 // original line the expectation anchors to
}

// Emit translates one file. Original code lines are never reordered or
// rewritten; the only in-place change is replacing an inline `//~`
// expectation trailer with its rendered DejaGnu form.
func Emit(f *source.File, directives []header.Directive, records []correlate.Record, r diag.Reporter) string {
	rules := parseNormalizations(directives, r)
	top := renderDirectives(directives, r)

	numLines := f.NumLines()

	// Group records by how they are placed. Inline records rewrite the
	// trailer on their own annotation line; stderr-only records get a
	// fresh line inserted above their target.
	annByLine := map[uint32][]correlate.Record{}
	insertAbove := map[uint32][]correlate.Record{}
	for _, rec := range records {
		if rec.FromStderr {
			insertAbove[rec.Line] = append(insertAbove[rec.Line], rec)
		} else {
			annByLine[rec.AnnotationLine] = append(annByLine[rec.AnnotationLine], rec)
		}
	}
	for line := range insertAbove {
		recs := insertAbove[line]
		sort.SliceStable(recs, func(i, j int) bool {
			if ri, rj := recs[i].Kind.EmitRank(), recs[j].Kind.EmitRank(); ri != rj {
				return ri < rj
			}
			return recs[i].Column < recs[j].Column
		})
	}

	// Layout.
	entries := make([]entry, 0, int(numLines)+len(top)+len(records))
	for _, line := range top {
		entries = append(entries, entry{text: line})
	}
	for lineNum := uint32(1); lineNum <= numLines; lineNum++ {
		for _, rec := range insertAbove[lineNum] {
			entries = append(entries, entry{ann: &annotation{rec: rec, target: rec.Line}})
		}

		text := f.GetLine(lineNum)
		if recs, ok := annByLine[lineNum]; ok {
			prefix := text
			if start, found := correlate.ExpectationMatch(text); found {
				prefix = text[:start]
			}
			first := recs[0]
			entries = append(entries, entry{orig: lineNum, ann: &annotation{rec: first, prefix: prefix, target: first.Line}})
			// Extra records on the same trailer (revision lists) go on
			// their own lines right below.
			for _, rec := range recs[1:] {
				entries = append(entries, entry{ann: &annotation{rec: rec, target: rec.Line}})
			}
			continue
		}

		entries = append(entries, entry{orig: lineNum, text: text})
	}

	// Resolve anchors against final positions.
	lineAt := make(map[uint32]int, numLines)
	for i, e := range entries {
		if e.orig != 0 {
			lineAt[e.orig] = i
		}
	}

	var b strings.Builder
	for i, e := range entries {
		if e.ann == nil {
			b.WriteString(e.text)
		} else {
			rel := 0
			if at, ok := lineAt[e.ann.target]; ok {
				rel = at - i
			}
			b.WriteString(e.ann.prefix)
			b.WriteString(renderRecord(e.ann.rec, rel, rules))
		}
		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	if len(entries) > 0 && (len(f.Content) == 0 || f.Content[len(f.Content)-1] == '\n') {
		b.WriteByte('\n')
	}
	return b.String()
}

// renderRecord renders one expectation. An empty message with a known
// error code falls back to the `.E0308.` pattern form used upstream.
func renderRecord(rec correlate.Record, rel int, rules []normalization) string {
	pattern := normalizeMessage(rec.Message, rules)
	if pattern == "" && rec.Code != "" {
		pattern = "." + rec.Code + "."
	}

	var parts []string
	if rec.Code != "" && pattern != "."+rec.Code+"." {
		parts = append(parts, rec.Code)
	}
	if rec.Revision != "" {
		parts = append(parts, "rev="+rec.Revision)
	}
	if rec.Column != 0 {
		parts = append(parts, fmt.Sprintf("col=%d", rec.Column))
	}

	return dejagnu.Expectation(rec.Kind.DejaGnu(), pattern, strings.Join(parts, " "), rel)
}

// renderDirectives produces the top-of-file annotation block, one line
// per directive in file order. Platform directives collapse into a
// single combined skip expression at the position of the first one;
// conflicting pass/fail expectations resolve to the last declaration.
func renderDirectives(directives []header.Directive, r diag.Reporter) []string {
	slots := make([]string, len(directives))

	platformFirst := -1
	var selectors []string
	var platformNames []string

	passFailAt := -1
	var passFail header.Directive

	for i, d := range directives {
		rule, known := catalog.Lookup(d.Name)
		if !known {
			diag.ReportWarning(r, diag.HdrUnknownDirective, d.Span,
				fmt.Sprintf("directive %q not recognized; dropped", d.Name))
			slots[i] = dejagnu.Passthrough(d.Name, d.Args)
			continue
		}
		if !rule.Supported {
			diag.ReportWarning(r, diag.MapUnsupportedDirective, d.Span,
				fmt.Sprintf("directive %q has no DejaGnu equivalent; dropped", d.Name))
			slots[i] = dejagnu.Passthrough(d.Name, d.Args)
			continue
		}

		switch rule.Family {
		case catalog.FamilyPlatform:
			sel, _ := rule.Selector()
			if platformFirst < 0 {
				platformFirst = i
			}
			selectors = append(selectors, sel)
			platformNames = append(platformNames, d.Name)

		case catalog.FamilyPassFail:
			// Validate before displacing: a malformed later directive
			// must not erase an earlier valid one.
			line, err := renderOne(rule, d.Args, d.Span, r)
			if err != nil {
				continue
			}
			if passFailAt >= 0 {
				code := diag.HdrDuplicateDirective
				if passPolarity(passFail.Name) != passPolarity(d.Name) {
					code = diag.MapConflictingPassFail
				}
				diag.ReportWarning(r, code, d.Span, fmt.Sprintf(
					"%q at line %d conflicts with %q at line %d; keeping the later one",
					d.Name, d.Line, passFail.Name, passFail.Line))
				slots[passFailAt] = ""
			}
			passFail, passFailAt = d, i
			slots[i] = line

		default:
			args := d.Args
			if strings.HasPrefix(d.Name, "normalize-") {
				// The prune pattern is the rule's match half; the
				// replacement half only matters for message rewriting.
				m := normalizeArgPattern.FindStringSubmatch(strings.TrimSpace(d.Args))
				if m == nil {
					// parseNormalizations already reported this rule.
					continue
				}
				args = m[normalizeArgPattern.SubexpIndex("pat")]
			}
			line, err := renderOne(rule, args, d.Span, r)
			if err != nil {
				continue
			}
			slots[i] = line
		}
	}

	if platformFirst >= 0 {
		slots[platformFirst] = dejagnu.SkipIf(strings.Join(platformNames, " "), selectors)
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func renderOne(rule catalog.Rule, args string, sp source.Span, r diag.Reporter) (string, error) {
	line, err := rule.Render(args)
	if err == nil {
		return line, nil
	}
	code := diag.HdrMalformedDirective
	switch {
	case rule.Arity != catalog.ArityZero && strings.TrimSpace(args) == "":
		code = diag.MapMissingArgument
	case rule.Arity == catalog.ArityZero && strings.TrimSpace(args) != "":
		code = diag.MapUnexpectedArgument
	}
	diag.ReportWarning(r, code, sp, err.Error())
	return "", err
}

// passPolarity reports whether a pass/fail directive expects success.
func passPolarity(name string) bool {
	return strings.HasSuffix(name, "-pass")
}
