package catalog_test

import (
	"strings"
	"testing"

	"dejaconv/internal/catalog"
	"dejaconv/internal/dejagnu"
)

func sampleArg(a catalog.Arity) string {
	switch a {
	case catalog.ArityOne:
		return "sample"
	case catalog.ArityKeyValue:
		return "NAME=value"
	default:
		return ""
	}
}

// Every supported rule must render to a line that re-parses as valid
// DejaGnu syntax. Platform rules render through the combined selector.
func TestSupportedRulesRenderValidSyntax(t *testing.T) {
	for _, rule := range catalog.All() {
		if !rule.Supported {
			continue
		}
		t.Run(rule.Name, func(t *testing.T) {
			if rule.Template == "" {
				t.Fatalf("supported rule %q has empty template", rule.Name)
			}
			if rule.Family == catalog.FamilyPlatform {
				sel, ok := rule.Selector()
				if !ok || sel == "" {
					t.Fatalf("platform rule %q yields no selector", rule.Name)
				}
				line := dejagnu.SkipIf(rule.Name, []string{sel})
				if _, err := dejagnu.ParseLine(line); err != nil {
					t.Fatalf("selector line %q does not parse: %v", line, err)
				}
				return
			}
			line, err := rule.Render(sampleArg(rule.Arity))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if _, err := dejagnu.ParseLine(line); err != nil {
				t.Fatalf("rendered line %q does not parse: %v", line, err)
			}
		})
	}
}

func TestUnsupportedRulesNeverRender(t *testing.T) {
	for _, rule := range catalog.All() {
		if rule.Supported {
			continue
		}
		if _, err := rule.Render(sampleArg(rule.Arity)); err == nil {
			t.Errorf("unsupported rule %q rendered without error", rule.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		found     bool
		family    catalog.Family
	}{
		{name: "edition", directive: "edition", found: true, family: catalog.FamilyMisc},
		{name: "aux-build", directive: "aux-build", found: true, family: catalog.FamilyBuildAux},
		{name: "platform ignore", directive: "ignore-windows", found: true, family: catalog.FamilyPlatform},
		{name: "platform only", directive: "only-x86_64", found: true, family: catalog.FamilyPlatform},
		{name: "pass-fail", directive: "check-pass", found: true, family: catalog.FamilyPassFail},
		{name: "unknown", directive: "brand-new-upstream-directive", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := catalog.Lookup(tt.directive)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.directive, ok, tt.found)
			}
			if ok && rule.Family != tt.family {
				t.Errorf("Lookup(%q).Family = %v, want %v", tt.directive, rule.Family, tt.family)
			}
		})
	}
}

func TestRenderArityContract(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		arg       string
		wantErr   bool
		contains  string
	}{
		{name: "edition with arg", directive: "edition", arg: "2018", contains: `-frust-edition=2018`},
		{name: "edition missing arg", directive: "edition", arg: "", wantErr: true},
		{name: "check-pass with stray arg", directive: "check-pass", arg: "bogus", wantErr: true},
		{name: "rustc-env without equals", directive: "rustc-env", arg: "JUSTNAME", wantErr: true},
		{name: "rustc-env ok", directive: "rustc-env", arg: "RUST_LOG=debug", contains: `dg-set-compiler-env-var RUST_LOG=debug`},
		{name: "compile-flags escapes quotes", directive: "compile-flags", arg: `--cfg feature="x"`, contains: `\"x\"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := catalog.Lookup(tt.directive)
			if !ok {
				t.Fatalf("directive %q missing from catalog", tt.directive)
			}
			line, err := rule.Render(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Render(%q) succeeded, want error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render(%q) error: %v", tt.arg, err)
			}
			if !strings.Contains(line, tt.contains) {
				t.Errorf("Render(%q) = %q, want substring %q", tt.arg, line, tt.contains)
			}
		})
	}
}

func TestCatalogIsClosedAndSized(t *testing.T) {
	if catalog.Len() < 100 {
		t.Errorf("catalog holds %d directives, expected the full vocabulary", catalog.Len())
	}
	seen := map[string]bool{}
	for _, r := range catalog.All() {
		if seen[r.Name] {
			t.Errorf("duplicate catalog entry %q", r.Name)
		}
		seen[r.Name] = true
	}
}
