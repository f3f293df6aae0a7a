package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/config"
	"github.com/vigil-sh/vigil/internal/constants"
)

// Version is set during build
var Version = "dev"

// Global flags
var (
	configPath string
	apiAddr    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "An HTTP endpoint watchdog",
	Long: `vigil periodically checks a set of HTTP(S) endpoints and runs a
configured recovery command when an endpoint keeps failing. It supports:
  - Per-site check intervals and failure thresholds
  - Recovery commands fired once per threshold of consecutive failures
  - A JSON site store and daily event logs
  - A local HTTP API with live event streaming
  - An interactive shell and a live terminal dashboard`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vigil version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&apiAddr, "addr", constants.DefaultAPIAddress, "API address for client commands")

	rootCmd.SetVersionTemplate("vigil version {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
}

// discoverAPIAddress derives the API address from the config file, falling
// back to the default when the config cannot be read
func discoverAPIAddress() string {
	cfg, err := config.Load(configPath)
	if err != nil {
		return constants.DefaultAPIAddress
	}
	return fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port)
}
