package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/olocus/seolint/internal/docsync"
)

// NewSyncDocsCmd creates the sync-docs command.
func NewSyncDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-docs <source-dir> <target-dir>",
		Short: "Mirror Markdown docs into the site tree with front matter",
		Long: `Sync-docs copies every Markdown file from the source directory into the
target directory at the same relative path, prepending a YAML front-matter
block with the document title. Files that already carry front matter are
copied unchanged. Parent directories are created as needed.

Examples:
  # Mirror protocol docs into the Docusaurus tree
  seolint sync-docs ../protocol/docs docs/protocol

  # Link each synced page back to its upstream source
  seolint sync-docs ../protocol/docs docs/protocol \
    --edit-url-base https://github.com/olocus/protocol/blob/main/docs`,
		Args: cobra.ExactArgs(2),
		RunE: runSyncDocsCmd,
	}

	cmd.Flags().String("edit-url-base", "",
		"Base URL for the custom_edit_url front-matter field")

	return cmd
}

// runSyncDocsCmd executes the sync-docs command.
func runSyncDocsCmd(cmd *cobra.Command, args []string) error {
	editURLBase, err := cmd.Flags().GetString("edit-url-base")
	if err != nil {
		return err
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	opts := []docsync.SyncerOption{docsync.WithSyncLogger(logger)}
	if editURLBase != "" {
		opts = append(opts, docsync.WithEditURLBase(editURLBase))
	}

	syncer := docsync.NewSyncer(opts...)
	synced, err := syncer.SyncDir(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d documents to %s\n", synced, args[1])
	return nil
}
