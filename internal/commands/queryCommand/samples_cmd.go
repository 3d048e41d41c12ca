package querycommand

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
	queryservice "github.com/redjax/csvdash/internal/services/queryService"
)

func NewSamplesCmd() *cobra.Command {
	var (
		tableName string
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Print generated sample queries for a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commands.LoadConfig(cmd)
			if err != nil {
				return err
			}
			res, err := loadTable(cmd.Context(), cfg, tableName)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed))

			samples := queryservice.GenerateSampleQueries(res.Table.Name, res.Unique, rng)
			if len(samples) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No sample queries for %s: no column has more than one value.\n", res.Table.Name)
				return nil
			}
			for _, s := range samples {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "", "Table to sample (default: first configured table)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for repeatable samples")

	return cmd
}
