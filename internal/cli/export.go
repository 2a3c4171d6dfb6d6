package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tournamentExport/internal/allocation"
	"tournamentExport/internal/exporter"
)

func newExportCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Allocate places and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withExporter(cmd.Context(), func(svc *exporter.Service) error {
				res, err := svc.Run(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(res)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d registrants, %d entries, %d cells written\n",
					res.RunID, res.Registrants, res.Entries, res.Cells)
				return writeSummaries(cmd, res.Bands)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run result as JSON")

	return cmd
}

func writeSummaries(cmd *cobra.Command, bands []allocation.BandSummary) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BAND\tDAY\tMAX\tREQUESTED\tACCEPTED\tWAITLISTED\tFREE")
	for _, b := range bands {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			b.Name, b.Day, b.MaxEntries, b.Requested, b.Accepted, b.Waitlisted, b.Free)
	}
	return tw.Flush()
}
