package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after files, environment variables and flags
are applied. The output is valid YAML and can be saved as a config file.

Examples:
  tui2048 config
  tui2048 config > ~/.tui2048/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", cfg.Source)
	os.Stdout.Write(data) //nolint:errcheck // Best-effort output
}
