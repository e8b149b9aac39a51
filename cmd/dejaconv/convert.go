package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dejaconv/internal/diag"
	"dejaconv/internal/diagfmt"
	"dejaconv/internal/driver"
	"dejaconv/internal/observ"
	"dejaconv/internal/source"
	"dejaconv/internal/translate"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file.rs>",
	Short: "Translate a single test file",
	Long:  `Translate one compiletest file to DejaGnu form, picking up .stderr companions automatically, and print the result or write it back`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("format", "pretty", "diagnostic output format (pretty|json|short)")
	convertCmd.Flags().StringArrayP("stderr", "e", nil, "expected-output file (repeatable; disables companion discovery)")
	convertCmd.Flags().StringP("output", "o", "", "write translated output to this path instead of stdout")
	convertCmd.Flags().Bool("write", false, "rewrite the input file in place")
	convertCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	convertCmd.Flags().Bool("fullpath", false, "emit absolute file paths in diagnostics")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	stderrPaths, err := cmd.Flags().GetStringArray("stderr")
	if err != nil {
		return fmt.Errorf("failed to get stderr flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	writeInPlace, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if writeInPlace && outputPath != "" {
		return fmt.Errorf("--write and --output are mutually exclusive")
	}

	timer := observ.NewTimer()

	phase := timer.Begin("load")
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inputPath, err)
	}
	file := fileSet.Get(fileID)

	var stderr []translate.StderrInput
	if len(stderrPaths) > 0 {
		stderr, err = loadStderrFiles(stderrPaths)
	} else {
		stderr, err = driver.LoadCompanions(inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load stderr companions: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d companion(s)", len(stderr)))

	phase = timer.Begin("translate")
	result := translate.File(fileSet, file, stderr, translate.Options{
		MaxDiagnostics: maxDiagnostics,
	})
	timer.End(phase, "")

	phase = timer.Begin("write")
	switch {
	case writeInPlace:
		if err := driver.WriteOutput(inputPath, []byte(result.Output)); err != nil {
			return fmt.Errorf("failed to rewrite %s: %w", inputPath, err)
		}
	case outputPath != "":
		if err := driver.WriteOutput(outputPath, []byte(result.Output)); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), result.Output)
	}
	timer.End(phase, "")

	if !quiet && result.Bag.Len() > 0 {
		if err := printDiagnostics(cmd, result.Bag, fileSet, format, withNotes, fullPath); err != nil {
			return err
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// loadStderrFiles reads explicitly named expected-output files. A file
// named like `test.rev.stderr` is treated as scoped to that revision.
func loadStderrFiles(paths []string) ([]translate.StderrInput, error) {
	inputs := make([]translate.StderrInput, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		rev := ""
		stem := strings.TrimSuffix(filepath.Base(path), ".stderr")
		if ext := filepath.Ext(stem); ext != "" && ext != ".rs" {
			rev = ext[1:]
		}
		inputs = append(inputs, translate.StderrInput{Revision: rev, Content: content})
	}
	return inputs, nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string, withNotes, fullPath bool) error {
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
	case "json":
		if err := diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	case "short":
		fmt.Fprint(os.Stderr, diag.FormatShortDiagnostics(bag.Items(), fs, withNotes))
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}
	return nil
}
