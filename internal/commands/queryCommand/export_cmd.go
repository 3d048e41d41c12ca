package querycommand

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
	exportservice "github.com/redjax/csvdash/internal/services/exportService"
	"github.com/redjax/csvdash/internal/utils/convert"
)

func NewExportCmd() *cobra.Command {
	var (
		tableName string
		filters   []string
		sample    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a table's matching rows to {table}_results.pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commands.LoadConfig(cmd)
			if err != nil {
				return err
			}

			res, err := loadTable(cmd.Context(), cfg, tableName)
			if err != nil {
				return err
			}
			sel, err := selectRows(res, filters, sample)
			if err != nil {
				return err
			}

			path, err := exportservice.WritePDFFile(cfg.Export.Dir, sel.table.Name, sel.table.Columns, sel.rows)
			if err != nil {
				return err
			}
			st, err := os.Stat(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s (%s)\n", len(sel.rows), path, convert.HumanBytes(st.Size()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "", "Table to export (default: first configured table)")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Column filter as column=v1,v2 (repeatable)")
	cmd.Flags().StringVar(&sample, "sample", "", "Export the result of a sample query")
	cmd.Flags().StringP("out", "o", ".", "Directory to write the PDF to")
	cmd.MarkFlagsMutuallyExclusive("filter", "sample")

	return cmd
}
