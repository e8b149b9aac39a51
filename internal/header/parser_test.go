package header

import (
	"testing"

	"dejaconv/internal/diag"
	"dejaconv/internal/source"
)

func parseVirtual(t *testing.T, content string) ([]Directive, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.rs", []byte(content)))
	bag := diag.NewBag(16)
	return Parse(f, diag.BagReporter{Bag: bag}), bag
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Directive
	}{
		{
			name:    "zero arg directive",
			content: "//@ check-pass\nfn main() {}\n",
			want:    []Directive{{Name: "check-pass", Line: 1}},
		},
		{
			name:    "directive with argument",
			content: "//@ edition: 2018\nfn main() {}\n",
			want:    []Directive{{Name: "edition", Args: "2018", Line: 1}},
		},
		{
			name:    "revision qualified",
			content: "//@[a] compile-flags: -O\nfn main() {}\n",
			want:    []Directive{{Name: "compile-flags", Revision: "a", Args: "-O", Line: 1}},
		},
		{
			name:    "comma revision list expands",
			content: "//@[a,b] check-pass\nfn main() {}\n",
			want: []Directive{
				{Name: "check-pass", Revision: "a", Line: 1},
				{Name: "check-pass", Revision: "b", Line: 1},
			},
		},
		{
			name:    "plain comments and blanks are skipped",
			content: "// just a comment\n\n//@ run-pass\nfn main() {}\n",
			want:    []Directive{{Name: "run-pass", Line: 3}},
		},
		{
			name:    "header ends at first code line",
			content: "//@ check-pass\nfn main() {}\n//@ edition: 2018\n",
			want:    []Directive{{Name: "check-pass", Line: 1}},
		},
		{
			name:    "unknown names are retained",
			content: "//@ brand-new-directive: xyz\nfn main() {}\n",
			want:    []Directive{{Name: "brand-new-directive", Args: "xyz", Line: 1}},
		},
		{
			name:    "no directives",
			content: "fn main() {}\n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := parseVirtual(t, tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() returned %d directives, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Name != tt.want[i].Name ||
					got[i].Revision != tt.want[i].Revision ||
					got[i].Args != tt.want[i].Args ||
					got[i].Line != tt.want[i].Line {
					t.Errorf("directive[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_MalformedDirectiveIsWarningNotFatal(t *testing.T) {
	got, bag := parseVirtual(t, "//@ [broken\n//@ check-pass\nfn main() {}\n")
	if len(got) != 1 || got[0].Name != "check-pass" {
		t.Fatalf("Parse() = %+v, want only check-pass", got)
	}
	if !bag.HasWarnings() {
		t.Error("malformed directive produced no warning")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.HdrMalformedDirective {
			found = true
		}
	}
	if !found {
		t.Error("expected HdrMalformedDirective in bag")
	}
}

func TestDeclaredRevisions(t *testing.T) {
	got, _ := parseVirtual(t, "//@ revisions: a b c\n//@ revisions: b d\nfn main() {}\n")
	revs := DeclaredRevisions(got)
	want := []string{"a", "b", "c", "d"}
	if len(revs) != len(want) {
		t.Fatalf("DeclaredRevisions() = %v, want %v", revs, want)
	}
	for i := range revs {
		if revs[i] != want[i] {
			t.Errorf("revs[%d] = %q, want %q", i, revs[i], want[i])
		}
	}
}
