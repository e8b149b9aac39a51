package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dejaconv/internal/pipeline"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranslateDir_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, dir, "pass.rs", "//@ check-pass\nfn main() {}\n")
	writeTestFile(t, dir, "sub/err.rs", "fn main() {\n    boom(); //~ ERROR cannot find\n}\n")
	writeTestFile(t, dir, "sub/err.stderr", "error[E0425]: cannot find\n --> err.rs:2:5\n")

	results, err := TranslateDir(context.Background(), dir, Options{
		OutDir: out,
		Write:  true,
	})
	if err != nil {
		t.Fatalf("TranslateDir() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Results come back in sorted path order.
	if filepath.Base(results[0].Path) != "pass.rs" {
		t.Errorf("results[0] = %s, want pass.rs", results[0].Path)
	}

	data, err := os.ReadFile(filepath.Join(out, "pass.rs"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !strings.Contains(string(data), "dg-do compile") {
		t.Errorf("pass.rs output lacks directive:\n%s", data)
	}

	data, err = os.ReadFile(filepath.Join(out, "sub", "err.rs"))
	if err != nil {
		t.Fatalf("nested output missing: %v", err)
	}
	if !strings.Contains(string(data), "E0425") {
		t.Errorf("stderr code not attached:\n%s", data)
	}
}

func TestTranslateDir_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, dir, "pass.rs", "//@ check-pass\nfn main() {}\n")

	results, err := TranslateDir(context.Background(), dir, Options{OutDir: out})
	if err != nil {
		t.Fatalf("TranslateDir() error: %v", err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("unexpected results: %+v", results)
	}
	if _, err := os.Stat(filepath.Join(out, "pass.rs")); !os.IsNotExist(err) {
		t.Error("dry run wrote an output file")
	}
}

func TestTranslateDir_CacheHitOnSecondRun(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, dir, "pass.rs", "//@ check-pass\nfn main() {}\n")

	opts := Options{Cache: cache}
	first, err := TranslateDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run should not hit the cache")
	}

	second, err := TranslateDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run should hit the cache")
	}
	if second[0].Output != first[0].Output {
		t.Error("cached output differs from fresh output")
	}
}

func TestTranslateDir_ProgressEvents(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "pass.rs", "//@ check-pass\nfn main() {}\n")

	ch := make(chan pipeline.Event, 64)
	_, err := TranslateDir(context.Background(), dir, Options{
		Sink: pipeline.ChannelSink{Ch: ch},
	})
	if err != nil {
		t.Fatal(err)
	}
	close(ch)

	var sawDone bool
	for evt := range ch {
		if evt.Status == pipeline.StatusDone {
			sawDone = true
		}
	}
	if !sawDone {
		t.Error("no StatusDone event observed")
	}
}

func TestTranslateDir_EmptyDir(t *testing.T) {
	results, err := TranslateDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("TranslateDir() error: %v", err)
	}
	if results != nil {
		t.Errorf("want nil results for empty dir, got %v", results)
	}
}

func TestLoadCompanions(t *testing.T) {
	dir := t.TempDir()
	test := writeTestFile(t, dir, "multi.rs", "fn main() {}\n")
	writeTestFile(t, dir, "multi.stderr", "plain\n")
	writeTestFile(t, dir, "multi.a.stderr", "rev a\n")
	writeTestFile(t, dir, "multi.b.stderr", "rev b\n")

	inputs, err := LoadCompanions(test)
	if err != nil {
		t.Fatalf("LoadCompanions() error: %v", err)
	}
	if len(inputs) != 3 {
		t.Fatalf("got %d companions, want 3", len(inputs))
	}
	if inputs[0].Revision != "" || string(inputs[0].Content) != "plain\n" {
		t.Errorf("unscoped companion wrong: %+v", inputs[0])
	}
	if inputs[1].Revision != "a" || inputs[2].Revision != "b" {
		t.Errorf("revision companions wrong: %+v", inputs[1:])
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := InputDigest([]byte("src"), [][]byte{[]byte("stderr")})
	in := &CachePayload{
		Schema:   diskCacheSchemaVersion,
		Output:   "translated\n",
		Changed:  true,
		Warnings: []string{"warning HDR1002 a.rs:1:1 nope"},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	var out CachePayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v, want hit", hit, err)
	}
	if out.Output != in.Output || out.Changed != in.Changed || len(out.Warnings) != 1 {
		t.Errorf("payload mismatch: %+v", out)
	}

	var miss CachePayload
	hit, err = cache.Get(InputDigest([]byte("other"), nil), &miss)
	if err != nil || hit {
		t.Errorf("unexpected hit for unknown key: %v, %v", hit, err)
	}
}

func TestDiskCache_PutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}

	key := InputDigest([]byte("src"), nil)
	payload := &CachePayload{Schema: diskCacheSchemaVersion, Output: "x\n"}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "tests", "tmp-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}

	entries, err := filepath.Glob(filepath.Join(dir, "tests", "*.mp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("want one cache entry, got %v", entries)
	}
}

func TestInputDigest_SensitiveToStderr(t *testing.T) {
	src := []byte("fn main() {}")
	a := InputDigest(src, nil)
	b := InputDigest(src, [][]byte{[]byte("error")})
	if a == b {
		t.Error("digest ignores stderr content")
	}
}
