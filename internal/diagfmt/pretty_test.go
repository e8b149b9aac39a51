package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rs", []byte("//@ bogus\nfn main() {}\n")))

	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.HdrUnknownDirective,
		Message:  `directive "bogus" not recognized; dropped`,
		Primary:  f.LineSpan(1),
	})
	return bag, fs
}

func TestPretty_PlainOutput(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "test.rs:1:1: WARNING HDR1002:") {
		t.Errorf("header line wrong:\n%s", out)
	}
	if !strings.Contains(out, "    //@ bogus") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~~~") {
		t.Errorf("underline missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color escapes present without Color option:\n%s", out)
	}
}

func TestPretty_NoLocationFallsBack(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: boom",
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "ERROR IO4001: failed to load file: boom") {
		t.Errorf("fallback line wrong:\n%s", out)
	}
}

func TestJSON_Output(t *testing.T) {
	bag, fs := testBag(t)

	var sb strings.Builder
	err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, sb.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d, want 1/1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "HDR1002" || d.Severity != "WARNING" {
		t.Errorf("diag = %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("location = %+v, want line 1 col 1", d.Location)
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	bag, fs := testBag(t)
	f, _ := fs.GetByPath("test.rs")
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.HdrDuplicateDirective,
		Message:  "directive repeated",
		Primary:  f.LineSpan(1),
	})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Errorf("count = %d, want truncated to 1", out.Count)
	}
	if bag.Len() != 2 {
		t.Errorf("bag mutated by output truncation")
	}
}
