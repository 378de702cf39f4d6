package main

import (
	"fmt"

	"github.com/renwick/curio/internal/catalog"
	"github.com/renwick/curio/internal/item"
	"github.com/spf13/cobra"
)

func init() {
	addCmd.Flags().StringP("name", "n", "", "Item name (required)")
	addCmd.Flags().StringP("description", "d", "", "Item description (required)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(addCmd)
}

// AddResult is the response for the add command.
type AddResult struct {
	Status string    `json:"status"`
	Item   item.Item `json:"item"`
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
	Long: `Add an item with an auto-assigned id and persist the catalog.

Example:
  curio add --name "Pen" --description "Blue ink pen"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	path := catalogPath()
	items := mustLoadItems(path)

	items, it, err := catalog.Add(items, name, description)
	if err != nil {
		exitWithError(ExitDataError, "invalid item: %v", err)
	}

	mustSaveItems(path, items)
	refreshIndex(path, items)

	if humanOutput {
		fmt.Printf("Added item %d: %s\n", it.ID, it.Name)
		return nil
	}
	return outputJSON(AddResult{Status: "added", Item: it})
}
