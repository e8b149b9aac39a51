// Package translate runs the full pipeline for one test file: parse the
// directive header, correlate expected diagnostics, emit the annotated
// DejaGnu output. Callers that process many files (the batch driver)
// call File once per test and merge the resulting bags.
package translate

import (
	"bytes"
	"fmt"

	"dejaconv/internal/correlate"
	"dejaconv/internal/diag"
	"dejaconv/internal/emit"
	"dejaconv/internal/header"
	"dejaconv/internal/source"
)

// DefaultMaxDiagnostics bounds the per-file diagnostic bag when the
// caller does not say otherwise.
const DefaultMaxDiagnostics = 256

// StderrInput is one compiler-output companion of a test file. Revision
// is empty for the plain `<test>.stderr` sibling and carries the label
// for per-revision `<test>.<rev>.stderr` siblings.
type StderrInput struct {
	Revision string
	Content  []byte
}

// Options tunes a single translation.
type Options struct {
	// MaxDiagnostics caps the diagnostic bag; 0 means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// Result is the outcome of translating one file. The translation itself
// never fails: problems land in Bag and the output degrades to
// passthrough comments for whatever could not be mapped.
type Result struct {
	Output     string
	Directives []header.Directive
	Records    []correlate.Record
	Bag        *diag.Bag

	// Changed reports whether Output differs from the input content.
	Changed bool
}

// File translates one test file. stderr companions, if any, are merged
// into a single virtual file with revision markers so the correlator
// sees every record with its scope attached.
func File(fs *source.FileSet, f *source.File, stderr []StderrInput, opts Options) *Result {
	max := opts.MaxDiagnostics
	if max <= 0 {
		max = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(max)
	r := diag.BagReporter{Bag: bag}

	directives := header.Parse(f, r)

	var errFile *source.File
	if len(stderr) > 0 {
		errFile = fs.Get(fs.AddVirtual(f.Path+".stderr", mergeStderr(stderr)))
	}

	records := correlate.Correlate(f, errFile, directives, r)
	output := emit.Emit(f, directives, records, r)

	bag.Sort()
	bag.Dedup()

	return &Result{
		Output:     output,
		Directives: directives,
		Records:    records,
		Bag:        bag,
		Changed:    output != string(f.Content),
	}
}

// mergeStderr concatenates the companions, prefixing each
// revision-scoped block with the marker the stderr parser recognizes.
// The unscoped companion always comes first so unscoped records attach
// before revision-scoped ones compete for the same lines.
func mergeStderr(inputs []StderrInput) []byte {
	var buf bytes.Buffer
	for _, in := range inputs {
		if in.Revision == "" {
			writeBlock(&buf, in.Content)
		}
	}
	for _, in := range inputs {
		if in.Revision != "" {
			fmt.Fprintf(&buf, "--- revision: %s ---\n", in.Revision)
			writeBlock(&buf, in.Content)
		}
	}
	return buf.Bytes()
}

func writeBlock(buf *bytes.Buffer, content []byte) {
	buf.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
