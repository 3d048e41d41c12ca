// Package commands holds the helpers every csvdash subcommand shares:
// resolving config from flags and opening the configured table source.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redjax/csvdash/internal/config"
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	sqliteservice "github.com/redjax/csvdash/internal/services/sqliteService"
)

// LoadConfig merges the config file named by --config with the environment
// and the command's flags.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cmd.Flags(), cfgFile)
}

// OpenLoader builds a loader over the source the config selects. The
// returned func releases the source and must always be called.
func OpenLoader(cfg *config.Config) (*loaderservice.Loader, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source.Kind {
	case "dir":
		src, err := loaderservice.NewDirSource(cfg.Source.Dir)
		if err != nil {
			return nil, noop, err
		}
		return loaderservice.NewLoader(src, cfg.Tables), noop, nil

	case "http":
		src, err := loaderservice.NewHTTPSource(cfg.Source.URL)
		if err != nil {
			return nil, noop, err
		}
		return loaderservice.NewLoader(src, cfg.Tables), noop, nil

	case "sqlite":
		svc, err := sqliteservice.NewSQLiteService(cfg.Source.DB)
		if err != nil {
			return nil, noop, err
		}
		return loaderservice.NewLoader(sqliteservice.NewSource(svc), cfg.Tables), svc.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown source kind: %q", cfg.Source.Kind)
}

// ResolveTable checks name against the configured tables. An empty name picks
// the first one.
func ResolveTable(loader *loaderservice.Loader, name string) (string, error) {
	if name == "" {
		tables := loader.Tables()
		if len(tables) == 0 {
			return "", fmt.Errorf("no tables configured")
		}
		return tables[0], nil
	}
	if !loader.IsKnownTable(name) {
		return "", fmt.Errorf("%w: %q (known: %v)", loaderservice.ErrUnknownTable, name, loader.Tables())
	}
	return name, nil
}
