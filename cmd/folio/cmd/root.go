package cmd

import (
	"context"
	"os"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/spf13/cobra"
)

// contentFile overrides CONTENT_FILE for every command.
var contentFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio personal portfolio site",
	Long: `Folio serves a single-page personal portfolio, or exports it as static files.

Available commands:
  serve       Run the web server
  export      Write the site to a directory for static hosting
  check       Validate the content file and summarise it
  sections    List the page sections
  services    List the services shared through the registry

Use "folio [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentFile, "content", "c", "", "content YAML file (overrides CONTENT_FILE)")
}

// loadConfig reads the environment and applies the global flags.
func loadConfig() *config.Config {
	cfg := config.New()
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}
	return cfg
}
