package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/seolint.yaml
var rulesTemplate embed.FS

// rulesFileName is the default rules file name.
const rulesFileName = ".seolint"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new seolint rules file",
		Long: `Initialize creates a new .seolint rules file in the current directory.

The generated file documents every available rule with its default value
commented out, so uncommenting a line is all it takes to override one.

Examples:
  # Create .seolint in current directory
  seolint init

  # Create rules file at a specific path
  seolint init -o myrules.yaml

  # Force overwrite existing file
  seolint init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", rulesFileName,
		"Output file path for the rules file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing rules file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("rules file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := rulesTemplate.ReadFile("templates/seolint.yaml")
	if err != nil {
		return fmt.Errorf("failed to read rules template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created rules file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nUncomment a rule in this file to override its default, for example:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - the recommended meta description length")
	fmt.Fprintln(cmd.OutOrStdout(), "  - the canonical site origin")
	fmt.Fprintln(cmd.OutOrStdout(), "  - the required tag sets")

	return nil
}
