package querycommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
)

func NewColumnsCmd() *cobra.Command {
	var (
		tableName string
		maxValues int
	)

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List a table's columns and their distinct values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commands.LoadConfig(cmd)
			if err != nil {
				return err
			}
			res, err := loadTable(cmd.Context(), cfg, tableName)
			if err != nil {
				return err
			}
			renderColumns(cmd.OutOrStdout(), res.Unique, maxValues)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "", "Table to describe (default: first configured table)")
	cmd.Flags().IntVar(&maxValues, "max-values", 10, "Values shown per column (0 for all)")

	return cmd
}
