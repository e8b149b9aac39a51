package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dejaconv/internal/driver"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <directory>",
	Short: "Translate every test file under a directory",
	Long:  `Translate all *.rs files under a directory in parallel, mirroring the tree into --out or rewriting in place with --write`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().String("out", "", "mirror translated files under this directory")
	batchCmd.Flags().Bool("write", false, "write outputs (otherwise dry run)")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	batchCmd.Flags().Bool("disk-cache", false, "cache translations on disk between runs")
	batchCmd.Flags().String("cache-dir", "", "override the disk cache location")
	batchCmd.Flags().Bool("verbose", false, "log per-file progress to stderr")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	useDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	// dejaconv.toml supplies defaults; flags win.
	if manifest, found, err := loadManifest(dir); err != nil {
		return err
	} else if found {
		if outDir == "" {
			outDir = manifest.Config.Batch.OutDir
		}
		if jobs == 0 {
			jobs = manifest.Config.Batch.Jobs
		}
		if !useDiskCache {
			useDiskCache = manifest.Config.Batch.Cache
		}
	}

	var cache *driver.DiskCache
	if useDiskCache {
		if cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("dejaconv")
		}
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	opts := driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		OutDir:         outDir,
		Write:          write,
		Cache:          cache,
		Logger:         logger,
	}

	var results []driver.FileResult
	if shouldUseTUI(uiModeValue) && !quiet {
		files, listErr := driver.ListTestFiles(dir)
		if listErr != nil {
			return listErr
		}
		if len(files) > 0 {
			results, err = runBatchWithUI(cmd.Context(), "dejaconv batch", files, dir, opts)
		}
	} else {
		results, err = driver.TranslateDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	return reportBatch(cmd, results, quiet, write)
}

func reportBatch(cmd *cobra.Command, results []driver.FileResult, quiet, wrote bool) error {
	var changed, cached, failed, warned int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if res.Changed {
			changed++
		}
		if res.Cached {
			cached++
		}
		if len(res.Warnings) > 0 {
			warned++
		}
	}

	if !quiet {
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			}
			for _, line := range res.Warnings {
				fmt.Fprintln(os.Stderr, line)
			}
		}

		verb := "would translate"
		if wrote {
			verb = "translated"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d file(s): %d changed, %d cached, %d with warnings, %d failed\n",
			verb, len(results), changed, cached, warned, failed)
	}

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
