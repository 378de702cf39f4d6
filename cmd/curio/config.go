package main

import (
	"fmt"

	"github.com/renwick/curio/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change global configuration",
	Long:  `Read and write the global config file (catalog_path).`,
}

// ConfigResponse is the response for config get.
type ConfigResponse struct {
	CatalogPath string `json:"catalog_path,omitempty"`
	Resolved    string `json:"resolved"`
}

// UpdateResponse is the response for config set.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the configured and resolved catalog path",
	Args:  cobra.NoArgs,
	RunE:  runConfigGet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	resolved := catalogPath()
	if humanOutput {
		fmt.Printf("catalog_path: %s\n", cfg.CatalogPath)
		fmt.Printf("resolved: %s\n", resolved)
		return nil
	}
	return outputJSON(ConfigResponse{CatalogPath: cfg.CatalogPath, Resolved: resolved})
}

var configSetCmd = &cobra.Command{
	Use:   "set catalog_path <path>",
	Short: "Set a global config value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if key != "catalog_path" {
		exitWithError(ExitConfigError, "unknown config key %q", key)
	}

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	cfg.CatalogPath = value
	if err := config.SaveGlobalConfig(cfg); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("set %s = %s\n", key, value)
		return nil
	}
	return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}
