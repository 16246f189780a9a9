package preflight

import (
	"context"
	"path/filepath"

	"songsearch/internal/catalog/itunes"
	"songsearch/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Skipped bool
	Detail  string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	client, err := itunes.New(cfg.Catalog.BaseURL,
		itunes.WithTimeout(cfg.RequestTimeout()),
		itunes.WithCountry(cfg.Catalog.Country),
		itunes.WithLimit(1),
		itunes.WithUserAgent(cfg.Catalog.UserAgent),
	)
	if err != nil {
		results = append(results, Result{Name: catalogCheckName, Detail: err.Error()})
	} else {
		results = append(results, CheckCatalog(ctx, client))
	}

	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("History directory", filepath.Dir(cfg.History.Path)))
	} else {
		results = append(results, Result{Name: "History directory", Skipped: true, Detail: "Disabled"})
	}

	if cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir))
	}

	return results
}

// Failed counts results that neither passed nor were skipped.
func Failed(results []Result) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			count++
		}
	}
	return count
}
