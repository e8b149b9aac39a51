package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dejaconv/internal/catalog"
)

var directivesCmd = &cobra.Command{
	Use:   "directives [flags]",
	Short: "List the known compiletest directives and their translations",
	Args:  cobra.NoArgs,
	RunE:  runDirectives,
}

func init() {
	directivesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	directivesCmd.Flags().String("family", "", "only show one directive family")
	directivesCmd.Flags().Bool("unsupported", false, "only show directives without a DejaGnu form")
}

type directiveRow struct {
	Name      string `json:"name"`
	Family    string `json:"family"`
	Arity     string `json:"arity"`
	Supported bool   `json:"supported"`
	Template  string `json:"template,omitempty"`
}

func runDirectives(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	familyValue, err := cmd.Flags().GetString("family")
	if err != nil {
		return fmt.Errorf("failed to get family flag: %w", err)
	}
	unsupportedOnly, err := cmd.Flags().GetBool("unsupported")
	if err != nil {
		return fmt.Errorf("failed to get unsupported flag: %w", err)
	}

	var familyFilter catalog.Family
	filterByFamily := false
	if familyValue != "" {
		familyFilter, filterByFamily = catalog.ParseFamily(familyValue)
		if !filterByFamily {
			return fmt.Errorf("unknown directive family %q", familyValue)
		}
	}

	rows := make([]directiveRow, 0, catalog.Len())
	for _, rule := range catalog.All() {
		if filterByFamily && rule.Family != familyFilter {
			continue
		}
		if unsupportedOnly && rule.Supported {
			continue
		}
		rows = append(rows, directiveRow{
			Name:      rule.Name,
			Family:    rule.Family.String(),
			Arity:     rule.Arity.String(),
			Supported: rule.Supported,
			Template:  rule.Template,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "pretty":
		printDirectiveTable(cmd, rows)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func printDirectiveTable(cmd *cobra.Command, rows []directiveRow) {
	colorize := useColor(cmd, os.Stdout)
	yes := "yes"
	no := "no"
	if colorize {
		yes = color.GreenString(yes)
		no = color.RedString(no)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tARITY\tSUPPORTED\tTEMPLATE")
	for _, row := range rows {
		supported := no
		if row.Supported {
			supported = yes
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Name, row.Family, row.Arity, supported, row.Template)
	}
	w.Flush()
}
