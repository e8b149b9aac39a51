package catalog

import (
	"fmt"
	"strings"
)

// Rule describes how one compiletest directive translates to DejaGnu.
//
// For most families Template is the rendered DejaGnu line; a %s verb, when
// present, receives the (escaped) directive argument. For FamilyPlatform
// the Template holds a DejaGnu target selector instead; the emitter
// combines all platform selectors of a file into one conditional-skip
// line, inverting the ones marked Invert (only-* directives).
type Rule struct {
	Name      string
	Family    Family
	Template  string
	Arity     Arity
	Supported bool
	Invert    bool
}

// Render produces the DejaGnu line for this rule with the given argument.
// Platform rules are not rendered individually; use Selector instead.
func (r Rule) Render(arg string) (string, error) {
	if !r.Supported {
		return "", fmt.Errorf("directive %q has no DejaGnu equivalent", r.Name)
	}
	if r.Family == FamilyPlatform {
		return "", fmt.Errorf("platform directive %q renders via combined selector", r.Name)
	}

	arg = strings.TrimSpace(arg)
	switch r.Arity {
	case ArityZero:
		if arg != "" {
			return "", fmt.Errorf("directive %q takes no argument, got %q", r.Name, arg)
		}
	case ArityOne:
		if arg == "" {
			return "", fmt.Errorf("directive %q requires an argument", r.Name)
		}
	case ArityKeyValue:
		if !strings.Contains(arg, "=") {
			return "", fmt.Errorf("directive %q requires a NAME=VALUE argument, got %q", r.Name, arg)
		}
	}

	if strings.Contains(r.Template, "%s") {
		return fmt.Sprintf(r.Template, EscapeArg(arg)), nil
	}
	return r.Template, nil
}

// Selector returns the DejaGnu target selector for a platform rule,
// with only-* selectors negated so every selector reads as "skip when
// it matches".
func (r Rule) Selector() (string, bool) {
	if r.Family != FamilyPlatform || !r.Supported {
		return "", false
	}
	if r.Invert {
		return "! " + r.Template, true
	}
	return r.Template, true
}

// EscapeArg escapes quotes and backslashes so the argument survives
// inside a quoted DejaGnu string.
func EscapeArg(arg string) string {
	arg = strings.ReplaceAll(arg, `\`, `\\`)
	arg = strings.ReplaceAll(arg, `"`, `\"`)
	return arg
}
