// Package header extracts compiletest directives from the leading
// comment block of a test file.
package header

import (
	"strings"

	"dejaconv/internal/source"
)

// Directive is one directive invocation found in the file header.
// Unknown names are retained here and resolved against the catalog at
// emission time, which keeps the audit trail complete.
type Directive struct {
	Name     string
	Revision string // empty = applies to every declared revision
	Args     string
	Line     uint32 // 1-based source line
	Span     source.Span
}

// DeclaredRevisions collects the revision labels declared by
// `revisions:` directives, in declaration order, without duplicates.
func DeclaredRevisions(directives []Directive) []string {
	var out []string
	seen := map[string]bool{}
	for _, d := range directives {
		if d.Name != "revisions" {
			continue
		}
		for _, label := range strings.Fields(d.Args) {
			if !seen[label] {
				seen[label] = true
				out = append(out, label)
			}
		}
	}
	return out
}
