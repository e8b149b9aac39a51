package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"
)

// Pretty formats diagnostics for humans. Walks bag.Items() (the caller
// is expected to bag.Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	    <source line>
//	    ^~~~
//
// followed by its notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	label := severityPaint(d.Severity, opts.Color)(d.Severity.String())

	loc, line, ok := locate(fs, d.Primary, opts.PathMode)
	if !ok {
		fmt.Fprintf(w, "%s %s: %s\n", label, d.Code.ID(), d.Message)
		return
	}

	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, label, d.Code.ID(), d.Message)
	printContext(w, line, d.Primary, fs, opts)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		if noteLoc, _, noteOK := locate(fs, note.Span, opts.PathMode); noteOK {
			fmt.Fprintf(w, "  note: %s: %s\n", noteLoc, note.Msg)
		} else {
			fmt.Fprintf(w, "  note: %s\n", note.Msg)
		}
	}
}

// locate renders "path:line:col" and returns the source line it points at.
func locate(fs *source.FileSet, span source.Span, mode PathMode) (string, string, bool) {
	f := fs.Get(span.File)
	if f == nil {
		return "", "", false
	}
	start, _ := fs.Resolve(span)
	if start.Line == 0 {
		return "", "", false
	}

	var path string
	switch mode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", "")
	}

	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col), f.GetLine(start.Line), true
}

// printContext prints the offending line with a ^~~~ underline sized to
// the span, with display widths measured per rune so wide characters
// keep the underline aligned.
func printContext(w io.Writer, line string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if line == "" {
		return
	}

	start, end := fs.Resolve(span)
	col := int(start.Col)
	if col < 1 || col > len(line)+1 {
		col = 1
	}

	spanLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanLen = int(end.Col - start.Col)
	}
	if col-1+spanLen > len(line) {
		spanLen = len(line) - (col - 1)
	}
	if spanLen < 1 {
		spanLen = 1
	}

	pad := runewidth.StringWidth(line[:col-1])
	width := runewidth.StringWidth(line[col-1 : col-1+min(spanLen, len(line)-col+1)])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityPaint(sev diag.Severity, enabled bool) func(...interface{}) string {
	if !enabled {
		return fmt.Sprint
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint
	default:
		return color.New(color.FgCyan).Sprint
	}
}
