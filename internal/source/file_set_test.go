package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("fn main() {}\nlet x = 1;\nlast"))
	f := fs.Get(id)

	tests := []struct {
		name     string
		lineNum  uint32
		expected string
	}{
		{name: "first line", lineNum: 1, expected: "fn main() {}"},
		{name: "middle line", lineNum: 2, expected: "let x = 1;"},
		{name: "last line without newline", lineNum: 3, expected: "last"},
		{name: "line zero", lineNum: 0, expected: ""},
		{name: "out of range", lineNum: 4, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.GetLine(tt.lineNum); got != tt.expected {
				t.Errorf("GetLine(%d) = %q, want %q", tt.lineNum, got, tt.expected)
			}
		})
	}
}

func TestFile_NumLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected uint32
	}{
		{name: "empty file", content: "", expected: 0},
		{name: "single line no newline", content: "abc", expected: 1},
		{name: "single line with newline", content: "abc\n", expected: 1},
		{name: "three lines", content: "a\nb\nc\n", expected: 3},
		{name: "trailing content", content: "a\nb\nc", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			f := fs.Get(fs.AddVirtual("t.rs", []byte(tt.content)))
			if got := f.NumLines(); got != tt.expected {
				t.Errorf("NumLines() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.rs", []byte("one\ntwo\nthree\n"))
	f := fs.Get(id)

	span := f.LineSpan(2)
	start, end := fs.Resolve(span)
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %+v, want line 2 col 1", start)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %+v, want line 2 col 4", end)
	}
}

func TestFileSet_LoadRejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rs")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	if _, err := fs.Load(path); err == nil {
		t.Fatal("Load accepted invalid UTF-8")
	}
}

func TestFileSet_LoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rs")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbffn main() {}\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "fn main() {}\n" {
		t.Errorf("content = %q, want normalized", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}
