package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"songsearch/internal/catalog/itunes"
	"songsearch/internal/config"
	"songsearch/internal/history"
	"songsearch/internal/logging"
	"songsearch/internal/lookup"
	"songsearch/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the shared CLI logger. A logger that cannot be built
// falls back to a no-op logger so commands still produce output.
func (c *commandContext) loggerFor(cfg *config.Config) *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// newResolver wires the catalog client into a resolver. A client that cannot
// be constructed leaves the resolver without a searcher, which renders the
// request-error sentinel.
func (c *commandContext) newResolver(cfg *config.Config, logger *slog.Logger) *lookup.Resolver {
	var searcher lookup.Searcher
	client, err := itunes.New(cfg.Catalog.BaseURL,
		itunes.WithTimeout(cfg.RequestTimeout()),
		itunes.WithCountry(cfg.Catalog.Country),
		itunes.WithFilters(cfg.Catalog.Media, cfg.Catalog.Entity),
		itunes.WithLimit(cfg.Catalog.Limit),
		itunes.WithUserAgent(cfg.Catalog.UserAgent),
	)
	if err != nil {
		logging.WarnWithContext(logger, "catalog client unavailable", "catalog_client_init_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify catalog.base_url in config"),
			logging.String(logging.FieldImpact, "every lookup renders the request error sentinel"),
		)
	} else {
		searcher = client
	}
	return lookup.NewResolver(searcher, cfg.Catalog.ProviderLabel, lookup.WithLogger(logger))
}

// lookupContext stamps a fresh correlation ID on the command context.
func lookupContext(cmd *cobra.Command) (context.Context, string) {
	id := uuid.NewString()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return services.WithRequestID(ctx, id), id
}

// journal records a finished lookup when history is enabled. Journal
// failures are logged and never fail the command.
func (c *commandContext) journal(ctx context.Context, cfg *config.Config, logger *slog.Logger, correlationID string, in lookup.Inspection, resp lookup.Response) {
	if !cfg.History.Enabled {
		return
	}
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "history"))
	store, err := history.Open(cfg)
	if err != nil {
		logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check history.path permissions"),
			logging.String(logging.FieldImpact, "lookup was not journaled"),
		)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, history.NewEntry(correlationID, in, resp)); err != nil {
		logging.WarnWithContext(logger, "history write failed", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "lookup was not journaled"),
		)
		return
	}
	logger.Debug("lookup journaled", logging.String("path", store.Path()))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
