package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	limit  int
	format string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the documentation from the command line",
		Long: `Search the documentation corpus without starting a server.

Matches article titles, content, and tags; results are ranked by
relevance with title matches weighted highest.

Examples:
  nextmcp-docs search "authentication"
  nextmcp-docs search "deploy with docker" --limit 3
  nextmcp-docs search "tools" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocalSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runLocalSearch(cmd *cobra.Command, q string, opts searchOptions) error {
	engine := query.NewEngine(docs.DefaultStore(), docs.DefaultExampleStore(), query.Options{})
	results := engine.Search(q, opts.limit)

	switch opts.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "text":
		return printSearchResults(cmd, q, results)
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json)", opts.format)
	}
}

func printSearchResults(cmd *cobra.Command, q string, results []query.Result) error {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No results for %q.\n", q)
		return nil
	}

	fmt.Fprintf(out, "%d result(s) for %q:\n\n", len(results), q)
	for i, r := range results {
		fmt.Fprintf(out, "%d. %s [%s] (score %d)\n", i+1, r.Title, r.Category, r.Score)
		fmt.Fprintf(out, "   id: %s\n", r.ID)
		if r.Snippet != "" {
			fmt.Fprintf(out, "   %s\n", r.Snippet)
		}
		fmt.Fprintln(out)
	}
	return nil
}
