// Package cli defines the cobra command tree for review-analyzer.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/evcraddock/review-analyzer/internal/client"
)

var (
	flagFormat  string
	flagEnvFile string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ra",
		Short:         "Collect and analyze customer reviews",
		Long:          "A service that stores customer reviews and scores their sentiment. Run the HTTP server, or list and submit reviews against a running one.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(flagEnvFile)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file to load before running")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newSubmitCmd(),
		newLocationsCmd(),
		newImportCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// loadEnv loads variables from a dotenv file without overriding ones already set.
// A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// newAPIClient creates an HTTP client for the review service.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
