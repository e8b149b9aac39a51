package dejagnu

import (
	"fmt"
	"strings"
)

// knownVerbs is the set of directive verbs this tool ever emits.
var knownVerbs = map[string]bool{
	"dg-error":                    true,
	"dg-warning":                  true,
	"dg-note":                     true,
	"dg-message":                  true,
	"dg-do":                       true,
	"dg-shouldfail":               true,
	"dg-additional-options":       true,
	"dg-additional-sources":       true,
	"dg-set-compiler-env-var":     true,
	"dg-set-target-env-var":       true,
	"dg-excess-errors":            true,
	"dg-bogus":                    true,
	"dg-prune-output":             true,
	"dg-skip-if":                  true,
	"dg-require-effective-target": true,
}

// Call is a parsed DejaGnu directive invocation.
type Call struct {
	Verb string
	Args []string // quoted strings and brace groups, in order
}

// ParseLine parses a rendered directive line of the form
// `// { dg-verb arg... }` (leading source code before the comment is
// allowed). It validates brace balance, string termination, and that
// the verb is one this tool can emit.
func ParseLine(line string) (Call, error) {
	idx := strings.Index(line, "//")
	if idx < 0 {
		return Call{}, fmt.Errorf("no comment on line %q", line)
	}
	rest := strings.TrimSpace(line[idx+2:])
	if !strings.HasPrefix(rest, "{") {
		return Call{}, fmt.Errorf("directive must open with '{': %q", rest)
	}

	body, err := braceGroup(rest)
	if err != nil {
		return Call{}, err
	}
	if strings.TrimSpace(rest[len(body):]) != "" {
		return Call{}, fmt.Errorf("trailing content after directive: %q", rest)
	}

	inner := strings.TrimSpace(body[1 : len(body)-1])
	verb, remainder := splitToken(inner)
	if !knownVerbs[verb] {
		return Call{}, fmt.Errorf("unknown directive verb %q", verb)
	}

	call := Call{Verb: verb}
	for remainder != "" {
		var arg string
		arg, remainder, err = nextArg(remainder)
		if err != nil {
			return Call{}, err
		}
		call.Args = append(call.Args, arg)
	}
	return call, nil
}

// braceGroup returns the prefix of s covering one balanced {...} group.
func braceGroup(s string) (string, error) {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], nil
			}
			if depth < 0 {
				return "", fmt.Errorf("unbalanced '}' in %q", s)
			}
		}
	}
	if inString {
		return "", fmt.Errorf("unterminated string in %q", s)
	}
	return "", fmt.Errorf("unbalanced '{' in %q", s)
}

func splitToken(s string) (token, rest string) {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return s[:i], strings.TrimSpace(s[i:])
		}
	}
	return s, ""
}

// nextArg consumes one argument: a quoted string, a {...} group, or a
// bare token.
func nextArg(s string) (arg, rest string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", nil
	}
	switch s[0] {
	case '"':
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '"':
				return s[:i+1], strings.TrimSpace(s[i+1:]), nil
			}
		}
		return "", "", fmt.Errorf("unterminated string in %q", s)
	case '{':
		group, err := braceGroup(s)
		if err != nil {
			return "", "", err
		}
		return group, strings.TrimSpace(s[len(group):]), nil
	default:
		tok, rest := splitToken(s)
		return tok, rest, nil
	}
}
