package opencommand

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
	"github.com/redjax/csvdash/internal/logging"
	"github.com/redjax/csvdash/internal/services/dashboardService/ui"
)

func NewOpenCmd() *cobra.Command {
	var startTable string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the interactive table dashboard",
		Long: `Browse the configured tables in a terminal dashboard.

Filter columns by value, run the generated query or a sample query,
page through results and export them to PDF. Logs go to a file while
the dashboard owns the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commands.LoadConfig(cmd)
			if err != nil {
				return err
			}

			logPath, closeLog, err := logging.SetupFile(cfg.Log.File, cfg.Log.Level, cfg.Debug)
			if err != nil {
				return err
			}
			defer closeLog()

			loader, closeSource, err := commands.OpenLoader(cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			if startTable != "" {
				if _, err := commands.ResolveTable(loader, startTable); err != nil {
					return err
				}
			}

			log.Info().
				Str("source", cfg.Source.Kind).
				Strs("tables", loader.Tables()).
				Msg("Starting dashboard")

			err = ui.Run(ui.Options{
				Loader:     loader,
				StartTable: startTable,
				PageSize:   cfg.UI.PageSize,
				RunDelay:   cfg.UI.RunDelay,
				ExportDir:  cfg.Export.Dir,
			})
			if err != nil {
				return fmt.Errorf("%w (log: %s)", err, logPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&startTable, "table", "t", "", "Table to show first")
	cmd.Flags().Int("page-size", 10, "Initial rows per page (5, 10, 20 or 50)")
	cmd.Flags().Duration("run-delay", 0, "Delay before query results are shown")
	cmd.Flags().StringP("out", "o", ".", "Directory PDF exports are written to")

	return cmd
}
