// Package driver runs the translation pipeline over whole test
// directories: file discovery, parallel translation, output writing and
// the disk cache that makes repeated runs cheap.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dejaconv/internal/diag"
	"dejaconv/internal/pipeline"
	"dejaconv/internal/source"
	"dejaconv/internal/translate"
)

// Options tunes a directory run.
type Options struct {
	// Jobs bounds translation parallelism; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps each file's diagnostic bag.
	MaxDiagnostics int
	// OutDir mirrors the input tree under another root. Empty with
	// Write set means translate in place.
	OutDir string
	// Write enables writing outputs; false is a dry run.
	Write bool
	// Cache, when non-nil, short-circuits unchanged inputs.
	Cache *DiskCache
	// Sink receives progress events; nil discards them.
	Sink pipeline.ProgressSink
	// Logger defaults to zap.NewNop.
	Logger *zap.Logger
}

// FileResult is the outcome for one test file.
type FileResult struct {
	Path     string // input path as discovered
	OutPath  string // destination, also in dry runs
	Output   string
	Warnings []string // preformatted, one line per diagnostic
	Changed  bool
	Cached   bool
	Err      error // load or write failure
}

// TranslateDir translates every *.rs file under dir in parallel.
// Per-file problems land in the corresponding FileResult; the returned
// error is reserved for directory walking and cancellation.
func TranslateDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := ListTestFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Preload every file so goroutines never touch the FileSet's
	// internals concurrently.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})

			res := FileResult{Path: path}
			res.OutPath = outPathFor(dir, path, opts.OutDir)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				res.Err = loadErr
				res.Warnings = warningLines(bag, fileSet)
				results[i] = res
				emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			file := fileSet.Get(fileIDs[path])

			stderr, err := LoadCompanions(path)
			if err != nil {
				res.Err = err
				results[i] = res
				emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err, Elapsed: time.Since(started)})
				return nil
			}

			digest := digestFor(file, stderr)
			var payload CachePayload
			if hit, err := opts.Cache.Get(digest, &payload); err == nil && hit {
				res.Output = payload.Output
				res.Changed = payload.Changed
				res.Warnings = payload.Warnings
				res.Cached = true
				logger.Debug("cache hit", zap.String("file", path))
			} else {
				emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})

				tr := translate.File(fileSet, file, stderr, translate.Options{
					MaxDiagnostics: opts.MaxDiagnostics,
				})
				res.Output = tr.Output
				res.Changed = tr.Changed
				res.Warnings = warningLines(tr.Bag, fileSet)

				if err := opts.Cache.Put(digest, &CachePayload{
					Schema:   diskCacheSchemaVersion,
					Output:   tr.Output,
					Changed:  tr.Changed,
					Warnings: res.Warnings,
				}); err != nil {
					logger.Warn("cache write failed", zap.String("file", path), zap.Error(err))
				}
			}

			if opts.Write {
				emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageWrite, Status: pipeline.StatusWorking})
				if err := WriteOutput(res.OutPath, []byte(res.Output)); err != nil {
					res.Err = err
					results[i] = res
					emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageWrite, Status: pipeline.StatusError, Err: err, Elapsed: time.Since(started)})
					return nil
				}
			}

			logger.Debug("translated",
				zap.String("file", path),
				zap.Bool("changed", res.Changed),
				zap.Bool("cached", res.Cached),
				zap.Int("warnings", len(res.Warnings)))

			results[i] = res
			emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageEmit, Status: pipeline.StatusDone, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func emit(sink pipeline.ProgressSink, evt pipeline.Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// ListTestFiles returns the sorted list of *.rs files under dir.
func ListTestFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rs") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Sorted for a deterministic run order.
	sort.Strings(files)
	return files, nil
}

// outPathFor mirrors path's position under dir into outDir; with no
// outDir the file translates in place.
func outPathFor(dir, path, outDir string) string {
	if outDir == "" {
		return path
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.Join(outDir, rel)
}

func digestFor(file *source.File, stderr []translate.StderrInput) Digest {
	contents := make([][]byte, len(stderr))
	for i, in := range stderr {
		contents[i] = append([]byte(in.Revision+"\x00"), in.Content...)
	}
	return InputDigest(file.Content, contents)
}

// WriteOutput writes atomically: temp file in the destination
// directory, then rename.
func WriteOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func warningLines(bag *diag.Bag, fs *source.FileSet) []string {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	out := diag.FormatShortDiagnostics(bag.Items(), fs, false)
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}
