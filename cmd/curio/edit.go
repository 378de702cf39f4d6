package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/renwick/curio/internal/catalog"
	"github.com/renwick/curio/internal/item"
	"github.com/spf13/cobra"
)

func init() {
	editCmd.Flags().StringP("name", "n", "", "New item name")
	editCmd.Flags().StringP("description", "d", "", "New item description")
	rootCmd.AddCommand(editCmd)
}

// EditResult is the response for the edit command.
type EditResult struct {
	Status string    `json:"status"`
	Item   item.Item `json:"item"`
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an item's name or description",
	Long: `Edit an item by id and persist the catalog. Flags that are not
set keep the current value; the id itself is immutable.

Example:
  curio edit 2 --description "Hardcover novel"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid id %q: must be an integer", args[0])
	}

	var upd catalog.FieldUpdate
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		upd.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		upd.Description = &description
	}

	path := catalogPath()
	items := mustLoadItems(path)

	it, err := catalog.Edit(items, id, upd)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			exitWithError(ExitNotFound, "item %d not found", id)
		}
		exitWithError(ExitDataError, "invalid edit: %v", err)
	}

	mustSaveItems(path, items)
	refreshIndex(path, items)

	if humanOutput {
		fmt.Printf("Updated item %d: %s\n", it.ID, it.Name)
		return nil
	}
	return outputJSON(EditResult{Status: "updated", Item: it})
}
