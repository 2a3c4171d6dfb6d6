package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tournamentExport/internal/exporter"
)

func newPreviewCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the report without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withExporter(cmd.Context(), func(svc *exporter.Service) error {
				p, err := svc.Preview(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(p)
				}
				return writePreview(cmd.OutOrStdout(), p)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the preview as JSON")

	return cmd
}

func writePreview(w io.Writer, p *exporter.Preview) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	fmt.Fprintln(tw, strings.Join(p.Header, "\t"))
	for _, row := range p.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v != nil {
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
