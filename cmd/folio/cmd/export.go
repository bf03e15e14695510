package cmd

import (
	"fmt"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/export"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	exportDark bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site to a directory for static hosting",
	Long: `Renders light.html and dark.html with every section visible, copies the
static assets next to them and writes index.html in the default theme.
Files written by a previous export that are no longer produced are removed.
The contact form of an exported page opens the visitor's mail client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		site, err := content.Load(cfg.GetContentFile())
		if err != nil {
			return err
		}

		store, err := storage.NewDirStore(exportOut)
		if err != nil {
			return fmt.Errorf("prepare %s: %w", exportOut, err)
		}

		x := export.New(store, rendering.NewUniversalRenderer())
		res, err := x.Export(cmd.Context(), site, export.Options{Dark: exportDark})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(res.Files), exportOut)
		if len(res.Removed) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stale files\n", len(res.Removed))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "make the dark theme the default page")
	rootCmd.AddCommand(exportCmd)
}
