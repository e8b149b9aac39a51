package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dejaconv/internal/dejagnu"
	"dejaconv/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> [file...]",
	Short: "Validate DejaGnu directive syntax in already translated files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("list", false, "print every well-formed directive that was found")
}

func runCheck(cmd *cobra.Command, args []string) error {
	listCalls, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}

	fileSet := source.NewFileSet()
	badLines := 0
	for _, path := range args {
		id, err := fileSet.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load file %s: %w", path, err)
		}
		badLines += checkFile(cmd, fileSet.Get(id), listCalls)
	}

	if badLines > 0 {
		fmt.Fprintf(os.Stderr, "found %d malformed directive line(s)\n", badLines)
		os.Exit(1)
	}
	return nil
}

// checkFile parses every line that looks like a DejaGnu directive and
// reports the ones that do not survive a round through the parser.
func checkFile(cmd *cobra.Command, f *source.File, listCalls bool) int {
	bad := 0
	for lineNum := uint32(1); lineNum <= f.NumLines(); lineNum++ {
		line := f.GetLine(lineNum)
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "// {") {
			continue
		}
		call, err := dejagnu.ParseLine(trimmed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", f.Path, lineNum, err)
			bad++
			continue
		}
		if listCalls {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s (%d arg(s))\n", f.Path, lineNum, call.Verb, len(call.Args))
		}
	}
	return bad
}
