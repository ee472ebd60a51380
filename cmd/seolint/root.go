// Package main provides the entry point for the seolint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seolint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seolint",
		Short: "SEO, accessibility, and structured-data checker for HTML pages",
		Long: `seolint scans HTML files for SEO and accessibility compliance.

Each file is checked for required meta tags, Open Graph and Twitter Card
tags, structural elements (canonical link, single H1, semantic landmarks),
accessibility hints, and valid JSON-LD structured data. Warnings are
advisory; any error fails the file and the run exits non-zero.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSyncDocsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
