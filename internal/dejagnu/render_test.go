package dejagnu

import "testing"

func TestExpectation(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		pattern string
		comment string
		relLine int
		want    string
	}{
		{
			name:    "same line error",
			kind:    KindError,
			pattern: "mismatched types",
			comment: "E0308",
			want:    `// { dg-error "mismatched types" "E0308" { target *-*-* } }`,
		},
		{
			name:    "anchored one line up",
			kind:    KindWarning,
			pattern: "unused variable",
			comment: "",
			relLine: -1,
			want:    `// { dg-warning "unused variable" "" { target *-*-* } .-1 }`,
		},
		{
			name:    "anchored below",
			kind:    KindNote,
			pattern: "defined here",
			comment: "rev=a",
			relLine: 2,
			want:    `// { dg-note "defined here" "rev=a" { target *-*-* } .+2 }`,
		},
		{
			name:    "quotes escaped",
			kind:    KindError,
			pattern: `cannot find value "x"`,
			comment: "",
			want:    `// { dg-error "cannot find value \"x\"" "" { target *-*-* } }`,
		},
		{
			name:    "help maps to dg-message",
			kind:    KindHelp,
			pattern: "try removing the borrow",
			comment: "",
			want:    `// { dg-message "try removing the borrow" "" { target *-*-* } }`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Expectation(tc.kind, tc.pattern, tc.comment, tc.relLine)
			if got != tc.want {
				t.Fatalf("Expectation() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSkipIf(t *testing.T) {
	got := SkipIf("only-x86_64 ignore-windows", []string{"! x86_64-*-*", "*-*-mingw*"})
	want := `// { dg-skip-if "only-x86_64 ignore-windows" { ! x86_64-*-* && *-*-mingw* } }`
	if got != want {
		t.Fatalf("SkipIf() = %q, want %q", got, want)
	}
}

func TestPassthrough(t *testing.T) {
	got := Passthrough("revisions", "a b")
	want := "// dejaconv: unsupported compiletest directive: revisions: a b"
	if got != want {
		t.Fatalf("Passthrough() = %q, want %q", got, want)
	}
	got = Passthrough("pretty-expanded", "")
	want = "// dejaconv: unsupported compiletest directive: pretty-expanded"
	if got != want {
		t.Fatalf("Passthrough() = %q, want %q", got, want)
	}
}

func TestRenderedDirectivesReparse(t *testing.T) {
	lines := []string{
		Expectation(KindError, "mismatched types", "E0308 col=5", -1),
		Expectation(KindWarning, `path "a\b"`, "", 0),
		SkipIf("ignore-windows", []string{"*-*-mingw*"}),
		`let x = 1; ` + Expectation(KindError, "trailing", "", 0),
	}
	for _, line := range lines {
		if _, err := ParseLine(line); err != nil {
			t.Fatalf("ParseLine(%q) error: %v", line, err)
		}
	}
}

func TestParseLine(t *testing.T) {
	call, err := ParseLine(`// { dg-error "mismatched types" "E0308" { target *-*-* } .-1 }`)
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if call.Verb != "dg-error" {
		t.Fatalf("Verb = %q, want dg-error", call.Verb)
	}
	if len(call.Args) != 4 {
		t.Fatalf("len(Args) = %d, want 4", len(call.Args))
	}
	if call.Args[2] != "{ target *-*-* }" {
		t.Fatalf("Args[2] = %q, want target group", call.Args[2])
	}
	if call.Args[3] != ".-1" {
		t.Fatalf("Args[3] = %q, want .-1", call.Args[3])
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"no comment", `{ dg-error "x" }`},
		{"no brace", `// dg-error "x"`},
		{"unbalanced open", `// { dg-error "x"`},
		{"unterminated string", `// { dg-error "x }`},
		{"unknown verb", `// { dg-frobnicate "x" }`},
		{"trailing content", `// { dg-error "x" } junk`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLine(tc.line); err == nil {
				t.Fatalf("ParseLine(%q) expected error", tc.line)
			}
		})
	}
}
