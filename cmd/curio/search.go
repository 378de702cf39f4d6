package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items by name or description",
	Long: `Search the SQLite index for items whose name or description
contains the query (case-insensitive substring match).

The index is derived from the CSV file; run 'curio rebuild' if it has
gone stale after hand-editing the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	path := catalogPath()

	db := mustOpenIndex(path)
	defer db.Close()

	results, err := db.Search(args[0])
	if err != nil {
		exitWithError(ExitDataError, "searching: %v", err)
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, it := range results {
			fmt.Printf("%d. %s: %s\n", it.ID, it.Name,
				truncateString(it.Description, SearchDescriptionMaxLen))
		}
		return nil
	}
	return outputJSON(ItemsResponse{Items: results, Count: len(results)})
}
