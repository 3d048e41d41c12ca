package querycommand

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/redjax/csvdash/internal/commands"
	"github.com/redjax/csvdash/internal/config"
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	queryservice "github.com/redjax/csvdash/internal/services/queryService"
	"github.com/redjax/csvdash/internal/utils/spinner"
)

// selection is what both query and export resolve before producing output.
type selection struct {
	table  *loaderservice.Table
	unique loaderservice.UniqueValues
	query  string
	rows   []loaderservice.Row
}

// loadTable opens the configured source and loads one table. Unlike the
// dashboard, a failed load is an error here.
func loadTable(ctx context.Context, cfg *config.Config, name string) (loaderservice.LoadResult, error) {
	loader, closeSource, err := commands.OpenLoader(cfg)
	if err != nil {
		return loaderservice.LoadResult{}, err
	}
	defer closeSource()

	table, err := commands.ResolveTable(loader, name)
	if err != nil {
		return loaderservice.LoadResult{}, err
	}

	stop := spinner.StartSpinner(fmt.Sprintf("Loading %s", table))
	res := loader.Load(ctx, table)
	stop()
	if res.Err != nil {
		return res, fmt.Errorf("failed to load table %s: %w", table, res.Err)
	}
	return res, nil
}

// selectRows applies either filters or a sample query to the loaded table.
// With neither, every row is selected.
func selectRows(res loaderservice.LoadResult, filterFlags []string, sample string) (*selection, error) {
	sel := &selection{table: res.Table, unique: res.Unique}

	if sample != "" {
		if msg := queryservice.ValidateQuery(sample); msg != "" {
			return nil, errors.New(msg)
		}
		rows, err := queryservice.RunSampleQuery(sample, res.Table.Name, res.Table.Rows)
		if err != nil {
			return nil, err
		}
		sel.query = sample
		sel.rows = rows
		return sel, nil
	}

	filters, err := queryservice.BuildFilters(filterFlags, res.Unique)
	if err != nil {
		return nil, err
	}
	sel.query = queryservice.GenerateQuery(res.Table.Name, res.Unique, filters)
	sel.rows = queryservice.ApplyColumnFilters(res.Table.Rows, filters)

	log.Debug().
		Str("table", res.Table.Name).
		Str("query", sel.query).
		Int("rows", len(sel.rows)).
		Msg("Selected rows")
	return sel, nil
}
