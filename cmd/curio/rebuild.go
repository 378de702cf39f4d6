package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query index from the catalog file",
	Long: `Rebuild the SQLite query index from the CSV source of truth.

Use this after editing the catalog file by hand or if the index becomes
corrupted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	path := catalogPath()
	items := mustLoadItems(path)

	db := mustOpenIndex(path)
	defer db.Close()

	n, err := db.Rebuild(items)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding index: %v", err)
	}

	if humanOutput {
		fmt.Printf("Indexed %d items\n", n)
		return nil
	}
	return outputJSON(RebuildResult{Status: "rebuilt", Items: n})
}
