// The root command for the CLI.
// This root 'composes' the subcommands and provides global config flags like --debug.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/commands"
	opencommand "github.com/redjax/csvdash/internal/commands/openCommand"
	querycommand "github.com/redjax/csvdash/internal/commands/queryCommand"
	"github.com/redjax/csvdash/internal/commands/sqliteCommand"
	"github.com/redjax/csvdash/internal/constants"
	"github.com/redjax/csvdash/internal/logging"
	"github.com/redjax/csvdash/internal/version"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Browse, filter and export CSV tables",
	Long: `Browse a fixed set of CSV tables in a terminal dashboard or from scripts.

Tables are read from a directory, a static web server or a SQLite file.
Filter by column values, try sample queries, page through the results and
export them to PDF.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commands.LoadConfig(cmd)
		if err != nil {
			return err
		}
		return logging.Setup(cfg.Log.Level, cfg.Debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or .env)")
	flags.BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	flags.String("source", constants.DefaultSourceKind, "Where tables are read from: dir, http or sqlite")
	flags.String("source-dir", constants.DefaultSourceDir, "Directory holding {table}.csv files")
	flags.String("source-url", "", "Base URL serving /csv/{table}.csv")
	flags.String("source-db", "", "SQLite database file")
	flags.StringSlice("tables", constants.DefaultTables, "Selectable tables, in display order")
	flags.String("log-level", constants.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "Log file used by the dashboard (default: csvdash.log in the temp dir)")

	rootCmd.AddCommand(opencommand.NewOpenCmd())
	rootCmd.AddCommand(querycommand.NewQueryCmd())
	rootCmd.AddCommand(querycommand.NewSamplesCmd())
	rootCmd.AddCommand(querycommand.NewColumnsCmd())
	rootCmd.AddCommand(querycommand.NewExportCmd())
	rootCmd.AddCommand(sqliteCommand.NewImportCmd())
	rootCmd.AddCommand(version.NewSelfCommand())
}
