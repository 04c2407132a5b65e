package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Browse the documentation corpus",
		Long: `Browse the documentation corpus from the command line.

Commands:
  categories  List categories with article counts
  show        Print a full article by ID
  examples    List code examples, or print one by name`,
	}

	cmd.AddCommand(newDocsCategoriesCmd())
	cmd.AddCommand(newDocsShowCmd())
	cmd.AddCommand(newDocsExamplesCmd())

	return cmd
}

func newDocsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with article counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := newLocalEngine()
			out := cmd.OutOrStdout()
			for _, info := range engine.Categories() {
				fmt.Fprintf(out, "%-20s %s (%d article(s))\n", info.Name, info.DisplayName, info.Count)
			}
			return nil
		},
	}
}

func newDocsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <doc-id>",
		Short: "Print a full article by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newLocalEngine()
			article, err := engine.FullDoc(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n\n", article.Title)
			fmt.Fprintf(out, "Category: %s\n", article.Category.DisplayName())
			if len(article.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(article.Tags, ", "))
			}
			fmt.Fprintf(out, "\n%s\n", article.Content)
			return nil
		},
	}
}

func newDocsExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [name]",
		Short: "List code examples, or print one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := newLocalEngine()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, name := range engine.ExampleNames() {
					example, err := engine.Example(name)
					if err != nil {
						continue
					}
					fmt.Fprintf(out, "%-20s %s\n", name, example.Title)
				}
				return nil
			}

			example, err := engine.Example(args[0])
			if err != nil {
				return fmt.Errorf("example %q not found (available: %s)",
					args[0], strings.Join(engine.ExampleNames(), ", "))
			}
			fmt.Fprintf(out, "# %s\n\n%s\n\n%s\n", example.Title, example.Explanation, example.Code)
			return nil
		},
	}
}

func newLocalEngine() *query.Engine {
	return query.NewEngine(docs.DefaultStore(), docs.DefaultExampleStore(), query.Options{})
}
