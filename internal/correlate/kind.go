package correlate

import (
	"strings"

	"dejaconv/internal/dejagnu"
)

// Kind classifies an expected compiler message.
type Kind uint8

const (
	// KindError is a hard compiler error.
	KindError Kind = iota
	// KindWarning is a compiler warning.
	KindWarning
	// KindNote is a secondary note.
	KindNote
	// KindHelp is a help message.
	KindHelp
	// KindSuggestion is a structured suggestion.
	KindSuggestion
	// KindUnspecified is an expectation without an explicit kind;
	// it renders as an error, matching upstream behavior.
	KindUnspecified
)

// ParseKind recognizes the kind keyword of an inline expectation or a
// stderr record header. Keywords may carry a trailing colon.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToUpper(s)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "ERROR":
		return KindError, true
	case "WARN", "WARNING":
		return KindWarning, true
	case "NOTE":
		return KindNote, true
	case "HELP":
		return KindHelp, true
	case "SUGGESTION":
		return KindSuggestion, true
	}
	return KindUnspecified, false
}

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindNote:
		return "note"
	case KindHelp:
		return "help"
	case KindSuggestion:
		return "suggestion"
	}
	return "error"
}

// DejaGnu maps the kind onto the directive verb used at emission.
// Suggestions have no dedicated verb and reuse dg-message.
func (k Kind) DejaGnu() dejagnu.Kind {
	switch k {
	case KindWarning:
		return dejagnu.KindWarning
	case KindNote:
		return dejagnu.KindNote
	case KindHelp, KindSuggestion:
		return dejagnu.KindHelp
	default:
		return dejagnu.KindError
	}
}

// EmitRank orders co-located records for deterministic output:
// errors before warnings before notes before help.
func (k Kind) EmitRank() int {
	switch k {
	case KindError, KindUnspecified:
		return 0
	case KindWarning:
		return 1
	case KindNote:
		return 2
	case KindHelp:
		return 3
	case KindSuggestion:
		return 4
	}
	return 5
}
