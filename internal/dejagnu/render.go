// Package dejagnu renders and validates DejaGnu test directives.
//
// Rendering follows the gccrs testsuite conventions: expectation
// directives look like
//
//	// { dg-error "pattern" "comment" { target *-*-* } .-1 }
//
// where the trailing anchor is relative to the line carrying the
// directive. The syntax checker in this package exists for the
// render -> re-parse round trip used by the emitter tests.
package dejagnu

import (
	"fmt"
	"strings"
)

// Kind is the expectation verb of a rendered directive.
type Kind uint8

const (
	// KindError expects a compiler error.
	KindError Kind = iota
	// KindWarning expects a compiler warning.
	KindWarning
	// KindNote expects a secondary note.
	KindNote
	// KindHelp expects a help message.
	KindHelp
)

func (k Kind) verb() string {
	switch k {
	case KindError:
		return "dg-error"
	case KindWarning:
		return "dg-warning"
	case KindNote:
		return "dg-note"
	case KindHelp:
		return "dg-message"
	}
	return "dg-error"
}

// Expectation renders an expectation directive.
//
// pattern is matched against compiler output; comment is free-form
// documentation (revision labels and columns land here); relLine anchors
// the expectation relative to the directive's own line: 0 means same
// line, negative values point that many lines up.
func Expectation(kind Kind, pattern, comment string, relLine int) string {
	rel := ""
	switch {
	case relLine < 0:
		rel = fmt.Sprintf(".%d ", relLine)
	case relLine > 0:
		rel = fmt.Sprintf(".+%d ", relLine)
	}
	return fmt.Sprintf(`// { %s "%s" "%s" { target *-*-* } %s}`,
		kind.verb(), escape(pattern), escape(comment), rel)
}

// Passthrough renders the audit comment for a dropped directive.
func Passthrough(name, args string) string {
	if args != "" {
		return fmt.Sprintf("// dejaconv: unsupported compiletest directive: %s: %s", name, args)
	}
	return fmt.Sprintf("// dejaconv: unsupported compiletest directive: %s", name)
}

// SkipIf renders the combined platform skip directive from target
// selectors joined with logical AND.
func SkipIf(comment string, selectors []string) string {
	return fmt.Sprintf(`// { dg-skip-if "%s" { %s } }`,
		escape(comment), strings.Join(selectors, " && "))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
