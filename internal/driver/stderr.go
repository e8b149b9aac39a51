package driver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dejaconv/internal/translate"
)

// LoadCompanions finds and reads the stderr siblings of a test file:
// `<base>.stderr` for the unscoped output and `<base>.<rev>.stderr` for
// per-revision output. Missing files are not an error; unreadable ones
// are.
func LoadCompanions(testPath string) ([]translate.StderrInput, error) {
	base := strings.TrimSuffix(testPath, filepath.Ext(testPath))

	var inputs []translate.StderrInput

	plain := base + ".stderr"
	if content, err := os.ReadFile(plain); err == nil {
		inputs = append(inputs, translate.StderrInput{Content: content})
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	matches, err := filepath.Glob(escapeGlob(base) + ".*.stderr")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	for _, m := range matches {
		rev := strings.TrimSuffix(strings.TrimPrefix(m, base+"."), ".stderr")
		if rev == "" {
			continue
		}
		content, err := os.ReadFile(m)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, translate.StderrInput{Revision: rev, Content: content})
	}

	return inputs, nil
}

// escapeGlob neutralizes glob metacharacters in a literal path prefix.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
