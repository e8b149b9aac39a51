// Package catalog holds the static mapping from rustc compiletest
// directive names to DejaGnu translation rules.
//
// The directive set is a closed vocabulary tied to a specific upstream
// compiletest version, so the table is embedded in the binary rather
// than loaded from configuration. Lookup is exact-match by name.
package catalog

import (
	"sort"
	"sync"
)

var (
	buildOnce sync.Once
	byName    map[string]Rule
)

func index() map[string]Rule {
	buildOnce.Do(func() {
		byName = make(map[string]Rule, len(rules))
		for _, r := range rules {
			byName[r.Name] = r
		}
	})
	return byName
}

// Lookup returns the rule for a directive name. The boolean is false for
// names absent from the catalog; callers must surface those as
// unrecognized directives, never drop them silently.
func Lookup(name string) (Rule, bool) {
	r, ok := index()[name]
	return r, ok
}

// All returns every rule sorted by name.
func All() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of cataloged directives.
func Len() int {
	return len(rules)
}
