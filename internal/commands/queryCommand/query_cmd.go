package querycommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
	exportservice "github.com/redjax/csvdash/internal/services/exportService"
	"github.com/redjax/csvdash/internal/services/pagination"
)

func NewQueryCmd() *cobra.Command {
	var (
		tableName string
		filters   []string
		sample    string
		page      int
		export    bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter a table and print one page of results",
		Long: `Load a table, apply column filters or a sample query, and print the
generated query followed by one page of matching rows.

Examples:
  csvdash query --table orders --filter status=shipped,pending
  csvdash query --table orders --sample "SELECT * FROM orders WHERE status = 'shipped';"
`,
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sel.query)

			if len(sel.rows) == 0 {
				fmt.Fprintln(out, "No data available.")
			} else {
				pager := pagination.New(cfg.UI.PageSize).Goto(page, len(sel.rows))
				renderRows(out, sel.table.Columns, pagination.Slice(sel.rows, pager.Page, pager.Size))
				fmt.Fprintf(out, "Page %d of %d (%d rows)\n", pager.Page, pager.TotalPages(len(sel.rows)), len(sel.rows))
			}

			if export {
				path, err := exportservice.WritePDFFile(cfg.Export.Dir, sel.table.Name, sel.table.Columns, sel.rows)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "", "Table to query (default: first configured table)")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Column filter as column=v1,v2 (repeatable)")
	cmd.Flags().StringVar(&sample, "sample", "", "Run a sample query instead of filters")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to print")
	cmd.Flags().Int("page-size", 10, "Rows per page (5, 10, 20 or 50)")
	cmd.Flags().BoolVar(&export, "export", false, "Also export all matching rows to PDF")
	cmd.Flags().String("out", ".", "Directory for the exported PDF")
	cmd.MarkFlagsMutuallyExclusive("filter", "sample")

	return cmd
}
