package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/nfrund/folio/internal/ui"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the page sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := append([]ui.Section{ui.SectionHero}, ui.NavSections...)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tANCHOR\tLABEL\tFADES IN")
		for _, s := range all {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", s, s.Anchor(), s.Label(), slices.Contains(ui.FadeSections, s))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
