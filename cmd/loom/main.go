package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Virtual-tree rendering for Go",
		Long: `Loom renders component trees to HTML and streams incremental
updates to connected clients.

Commands operate on the demo application bundled with the CLI, and read
project settings from loom.json in the working directory when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// loadConfig reads loom.json from the working directory, falling back to
// defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		if le, ok := err.(*errors.LoomError); ok && le.Code == "E060" {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}
