package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/dragon-paving/internal/catalog"
	"github.com/pkordes/dragon-paving/internal/route"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the page route table and the service slugs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tPATTERN\tVIEW")
		for i, r := range route.Default().Routes() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.Pattern, r.View)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "SERVICES")
		for _, svc := range catalog.Default().All() {
			fmt.Fprintf(out, "  %s\t%s\n", svc.Path(), svc.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
