package diag

import (
	"fmt"
)

// Code identifies a translator diagnostic. Ranges are grouped by phase:
// 1000 header parsing, 2000 directive mapping, 3000 correlation, 4000 IO.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified issues.
	UnknownCode Code = 0

	// Header parsing.
	HdrInfo               Code = 1000
	HdrMalformedDirective Code = 1001
	HdrUnknownDirective   Code = 1002
	HdrBadRevisionList    Code = 1003
	HdrEmptyDirective     Code = 1004
	HdrDuplicateDirective Code = 1005

	// Directive mapping.
	MapInfo                 Code = 2000
	MapUnsupportedDirective Code = 2001
	MapConflictingPassFail  Code = 2002
	MapMissingArgument      Code = 2003
	MapUnexpectedArgument   Code = 2004
	MapUnknownRevision      Code = 2005

	// Diagnostic correlation.
	CorrInfo                Code = 3000
	CorrLineOutOfBounds     Code = 3001
	CorrFollowWithoutAnchor Code = 3002
	CorrMalformedRecord     Code = 3003
	CorrUnknownSeverity     Code = 3004
	CorrEmptyExpectation    Code = 3005

	// IO.
	IOInfo             Code = 4000
	IOLoadFileError    Code = 4001
	IOLoadStderrError  Code = 4002
	IOWriteOutputError Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown issue",

	HdrInfo:               "header info",
	HdrMalformedDirective: "malformed directive syntax",
	HdrUnknownDirective:   "directive not recognized",
	HdrBadRevisionList:    "invalid revision list",
	HdrEmptyDirective:     "directive has no name",
	HdrDuplicateDirective: "directive repeated",

	MapInfo:                 "mapping info",
	MapUnsupportedDirective: "directive has no DejaGnu equivalent",
	MapConflictingPassFail:  "conflicting pass/fail expectations",
	MapMissingArgument:      "directive requires an argument",
	MapUnexpectedArgument:   "directive takes no argument",
	MapUnknownRevision:      "revision not declared by this file",

	CorrInfo:                "correlation info",
	CorrLineOutOfBounds:     "diagnostic line outside source bounds",
	CorrFollowWithoutAnchor: "follow marker without preceding expectation",
	CorrMalformedRecord:     "malformed diagnostic record",
	CorrUnknownSeverity:     "unknown diagnostic severity",
	CorrEmptyExpectation:    "expectation has no message",

	IOInfo:             "io info",
	IOLoadFileError:    "failed to load source file",
	IOLoadStderrError:  "failed to load stderr file",
	IOWriteOutputError: "failed to write translated output",
}

// ID returns a stable short identifier, e.g. "HDR1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("HDR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("MAP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("COR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
