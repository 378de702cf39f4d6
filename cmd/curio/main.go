// Package main provides the curio CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/renwick/curio/internal/config"
	"github.com/renwick/curio/internal/item"
	"github.com/renwick/curio/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// catalogFile overrides the catalog path when set via --file
var catalogFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "curio",
	Short: "Single-user catalog manager",
	Long: `curio manages a small catalog of items (id, name, description)
backed by a CSV file.

Running curio without a subcommand starts the interactive menu. The menu
keeps all changes in memory until you choose "Save and exit"; subcommands
persist immediately.

A SQLite index derived from the CSV file backs the search command; rebuild
it with 'curio rebuild' after editing the CSV by hand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// .env may carry CURIO_CATALOG; missing file is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "", "Catalog file path (default: CURIO_CATALOG, global config, then ./catalog.csv)")
	rootCmd.Version = Version
}

// catalogPath resolves the catalog file path from flag, env and config.
func catalogPath() string {
	return config.ResolveCatalogPath(catalogFile)
}

// mustLoadItems loads the catalog, exits on error.
func mustLoadItems(path string) []item.Item {
	items, err := storage.Load(path)
	if err != nil {
		exitWithError(ExitDataError, "loading catalog: %v", err)
	}
	return items
}

// mustSaveItems saves the catalog, exits on error.
func mustSaveItems(path string, items []item.Item) {
	if err := storage.Save(path, items); err != nil {
		exitWithError(ExitDataError, "saving catalog: %v", err)
	}
}

// mustOpenIndex opens the SQLite index for a catalog path, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenIndex(path string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(path))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	return db
}

// refreshIndex rebuilds the SQLite index after a mutation, exits on error.
func refreshIndex(path string, items []item.Item) {
	db := mustOpenIndex(path)
	defer db.Close()
	if _, err := db.Rebuild(items); err != nil {
		exitWithError(ExitError, "updating index: %v", err)
	}
}
