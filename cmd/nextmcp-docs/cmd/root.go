// Package cmd provides the CLI commands for the NextMCP documentation server.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KeshavVarad/nextmcp-docs-server/pkg/version"
)

// NewRootCmd creates the root command for the nextmcp-docs CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextmcp-docs",
		Short: "MCP documentation server for the NextMCP framework",
		Long: `nextmcp-docs serves NextMCP framework documentation to AI assistants
over the Model Context Protocol.

It exposes search, full-article retrieval, category listings, and code
examples as MCP tools, the corpus as MCP resources, and guided workflows
(build a server, debug an issue, learn a topic) as MCP prompts.

Run 'nextmcp-docs serve' to start the server.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("nextmcp-docs version {{.Version}}\n")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
