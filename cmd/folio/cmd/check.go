package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content file and summarise it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		site, err := content.Load(cfg.GetContentFile())
		if err != nil {
			return err
		}

		source := cfg.GetContentFile()
		if source == "" {
			source = "built-in defaults"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Content OK (%s)\n", source)
		fmt.Fprintf(out, "Title: %s\n", site.Profile.SiteTitle())

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PROJECT\tTAGS")
		for _, card := range ui.Cards(site.Projects) {
			fmt.Fprintf(w, "%s\t%d\n", card.Project.Title, len(card.Project.Tags))
		}
		fmt.Fprintln(w, "\nSKILL GROUP\tSKILLS")
		for _, group := range ui.SkillGroups(site.Skills) {
			fmt.Fprintf(w, "%s\t%d\n", group.Name, len(group.Bars))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
