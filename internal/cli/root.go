package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radiostream/server/internal/logging"
)

// Flags shared by the root command and its subcommands.
var (
	configPath string
	staticDir  string
	logLevel   string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "radiostream",
	Short: "RadioStream station front panel",
	Long:  `A single-station web player with an admin console for editing the station's metadata, theme, images and stream URL.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json", "Path to the station configuration file")
	RootCmd.PersistentFlags().StringVar(&staticDir, "static-dir", "static", "Directory holding the cover and background images")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
}
