package emit

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"dejaconv/internal/diag"
	"dejaconv/internal/header"
)

// normalization is one pattern-substitution rule declared by a
// normalize-* directive: `"pattern" -> "replacement"`.
type normalization struct {
	re   *regexp.Regexp
	repl string
}

var normalizeArgPattern = regexp.MustCompile(`^"(?P<pat>.*)"\s*->\s*"(?P<repl>.*)"$`)

// parseNormalizations collects the substitution rules from normalize-*
// directives. Unparseable rules are reported and skipped; the directive
// itself still renders its dg-prune-output line.
func parseNormalizations(directives []header.Directive, r diag.Reporter) []normalization {
	var out []normalization
	for _, d := range directives {
		if !strings.HasPrefix(d.Name, "normalize-") {
			continue
		}
		m := normalizeArgPattern.FindStringSubmatch(strings.TrimSpace(d.Args))
		if m == nil {
			diag.ReportWarning(r, diag.HdrMalformedDirective, d.Span,
				fmt.Sprintf("cannot parse normalization rule %q", d.Args))
			continue
		}
		pat := m[normalizeArgPattern.SubexpIndex("pat")]
		re, err := regexp.Compile(pat)
		if err != nil {
			diag.ReportWarning(r, diag.HdrMalformedDirective, d.Span,
				fmt.Sprintf("invalid normalization pattern %q: %v", pat, err))
			continue
		}
		out = append(out, normalization{re: re, repl: m[normalizeArgPattern.SubexpIndex("repl")]})
	}
	return out
}

// normalizeMessage applies the file's substitution rules and NFC
// normalization so emitted patterns are architecture and encoding
// independent.
func normalizeMessage(msg string, rules []normalization) string {
	for _, n := range rules {
		msg = n.re.ReplaceAllString(msg, n.repl)
	}
	return norm.NFC.String(msg)
}
