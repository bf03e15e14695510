package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/folio/internal/app"
	"github.com/spf13/cobra"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serves the portfolio with its interactive endpoints. The server stops
gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		if serveWatch {
			cfg.ContentWatch = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.Bootstrap(ctx, cfg, version)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides APP_ADDR)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}
