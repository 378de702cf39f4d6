package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	Long:  `List all catalog items in ascending id order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	items := mustLoadItems(catalogPath())

	if humanOutput {
		printItemsHuman(os.Stdout, items)
		return nil
	}
	return outputJSON(ItemsResponse{Items: items, Count: len(items)})
}
