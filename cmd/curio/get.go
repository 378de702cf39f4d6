package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single item",
	Long: `Look up a single item by id in the SQLite index.

The index is derived from the CSV file; run 'curio rebuild' if it has
gone stale after hand-editing the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid id %q: must be an integer", args[0])
	}

	db := mustOpenIndex(catalogPath())
	defer db.Close()

	it, err := db.GetByID(id)
	if err != nil {
		exitWithError(ExitDataError, "querying item: %v", err)
	}
	if it == nil {
		exitWithError(ExitNotFound, "item %d not found", id)
	}

	if humanOutput {
		fmt.Printf("ID: %d\nName: %s\nDescription: %s\n", it.ID, it.Name, it.Description)
		return nil
	}
	return outputJSON(it)
}
