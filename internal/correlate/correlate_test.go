package correlate

import (
	"testing"

	"dejaconv/internal/diag"
	"dejaconv/internal/header"
	"dejaconv/internal/source"
)

func load(t *testing.T, fs *source.FileSet, name, content string) *source.File {
	t.Helper()
	return fs.Get(fs.AddVirtual(name, []byte(content)))
}

func correlateSource(t *testing.T, content string) ([]Record, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := load(t, fs, "test.rs", content)
	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	return Correlate(f, nil, header.Parse(f, r), r), bag
}

func TestScanExpectations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Record
	}{
		{
			name:    "same line",
			content: "let x: u32 = \"s\"; //~ ERROR mismatched types\n",
			want:    []Record{{Line: 1, RelLine: 0, Kind: KindError, Message: "mismatched types", AnnotationLine: 1}},
		},
		{
			name:    "one line up",
			content: "let x: u32 = \"s\";\n//~^ ERROR mismatched types\n",
			want:    []Record{{Line: 1, RelLine: -1, Kind: KindError, Message: "mismatched types", AnnotationLine: 2}},
		},
		{
			name:    "several lines up",
			content: "fn f(i32);\nfn g() {}\n//~^^ ERROR anonymous parameters\n",
			want:    []Record{{Line: 1, RelLine: -2, Kind: KindError, Message: "anonymous parameters", AnnotationLine: 3}},
		},
		{
			name:    "follow chain reuses anchor",
			content: "bad line\n//~^ ERROR first\n//~| WARNING second\n",
			want: []Record{
				{Line: 1, RelLine: -1, Kind: KindError, Message: "first", AnnotationLine: 2},
				{Line: 1, RelLine: -2, Kind: KindWarning, Message: "second", AnnotationLine: 3},
			},
		},
		{
			name:    "kind defaults to error",
			content: "bad //~ something went wrong\n",
			want:    []Record{{Line: 1, RelLine: 0, Kind: KindUnspecified, Message: "something went wrong", AnnotationLine: 1}},
		},
		{
			name:    "warn keyword with colon",
			content: "x //~ WARN: unused\n",
			want:    []Record{{Line: 1, RelLine: 0, Kind: KindWarning, Message: "unused", AnnotationLine: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := correlateSource(t, tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				g := got[i]
				if g.Line != w.Line || g.RelLine != w.RelLine || g.Kind != w.Kind ||
					g.Message != w.Message || g.AnnotationLine != w.AnnotationLine {
					t.Errorf("record[%d] = %+v, want %+v", i, g, w)
				}
			}
		})
	}
}

func TestScanExpectations_PerRecordFailures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode diag.Code
		records  int
	}{
		{
			name:     "follow without anchor",
			content:  "//~| ERROR orphan\nx //~ ERROR kept\n",
			wantCode: diag.CorrFollowWithoutAnchor,
			records:  1,
		},
		{
			name:     "caret past top of file",
			content:  "//~^^^ ERROR too far\nx //~ ERROR kept\n",
			wantCode: diag.CorrLineOutOfBounds,
			records:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bag := correlateSource(t, tt.content)
			if len(got) != tt.records {
				t.Fatalf("got %d records, want %d", len(got), tt.records)
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.wantCode {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v in bag, got %+v", tt.wantCode, bag.Items())
			}
		})
	}
}

func TestCorrelate_StderrEnrichment(t *testing.T) {
	fs := source.NewFileSet()
	src := load(t, fs, "test.rs",
		"fn main() {\n    let x: u32 = \"s\"; //~ ERROR mismatched types\n}\n")
	errf := load(t, fs, "test.stderr",
		"error[E0308]: mismatched types\n  --> $DIR/test.rs:2:18\n   |\nnote: expected `u32`\n")

	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	got := Correlate(src, errf, header.Parse(src, r), r)

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1: %+v", len(got), got)
	}
	rec := got[0]
	if rec.Code != "E0308" {
		t.Errorf("Code = %q, want E0308", rec.Code)
	}
	if rec.Column != 18 {
		t.Errorf("Column = %d, want 18", rec.Column)
	}
	if rec.FromStderr {
		t.Error("enriched record should not be marked FromStderr")
	}
}

func TestCorrelate_StderrOnlyRecord(t *testing.T) {
	fs := source.NewFileSet()
	src := load(t, fs, "test.rs", "fn main() {\n    undefined();\n}\n")
	errf := load(t, fs, "test.stderr",
		"error[E0425]: cannot find function `undefined`\n  --> $DIR/test.rs:2:5\n")

	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	got := Correlate(src, errf, nil, r)

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1: %+v", len(got), got)
	}
	rec := got[0]
	if !rec.FromStderr {
		t.Error("record should be marked FromStderr")
	}
	if rec.Line != 2 || rec.Column != 5 {
		t.Errorf("Line:Column = %d:%d, want 2:5", rec.Line, rec.Column)
	}
	if rec.Message != "cannot find function `undefined`" {
		t.Errorf("Message = %q", rec.Message)
	}
}

func TestCorrelate_StderrLineOutOfBounds(t *testing.T) {
	fs := source.NewFileSet()
	src := load(t, fs, "test.rs", "fn main() {}\n")
	errf := load(t, fs, "test.stderr",
		"error: phantom\n  --> $DIR/test.rs:12:5\n")

	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	got := Correlate(src, errf, nil, r)

	if len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.CorrLineOutOfBounds {
			found = true
		}
	}
	if !found {
		t.Error("expected CorrLineOutOfBounds warning")
	}
}

func TestCorrelate_RevisionPartitioning(t *testing.T) {
	fs := source.NewFileSet()
	src := load(t, fs, "test.rs",
		"//@ revisions: a b\nfn main() {\n    broken();\n}\n")
	errf := load(t, fs, "test.stderr",
		"--- revision: a ---\n"+
			"error: broken under a\n  --> $DIR/test.rs:3:5\n"+
			"--- revision: b ---\n"+
			"error: broken under b\n  --> $DIR/test.rs:3:5\n")

	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	got := Correlate(src, errf, header.Parse(src, r), r)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(got), got)
	}
	if got[0].Revision != "a" || got[1].Revision != "b" {
		t.Errorf("revisions = %q, %q; want a, b", got[0].Revision, got[1].Revision)
	}
}

func TestCorrelate_UndeclaredRevisionDropped(t *testing.T) {
	got, bag := correlateSource(t,
		"//@ revisions: a\nx //[zz]~ ERROR scoped\n")
	if len(got) != 0 {
		t.Fatalf("got %d records, want 0: %+v", len(got), got)
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.MapUnknownRevision {
			found = true
		}
	}
	if !found {
		t.Error("expected MapUnknownRevision warning")
	}
}
