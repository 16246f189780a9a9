package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"songsearch/internal/config"
	"songsearch/internal/history"
)

var errHistoryDisabled = errors.New("history is disabled (set history.enabled = true)")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}
			return withHistory(ctx, func(store *history.Store) error {
				entries, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					if entries == nil {
						entries = []history.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No lookups recorded")
					return nil
				}
				style := styleFor(cmd)
				fmt.Fprintln(out, style.renderTable(
					[]string{"ID", "When", "Outcome", "Query", "Result"},
					historyRows(style, entries),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of lookups to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every journaled lookup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(ctx, func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d lookup(s)\n", removed)
				return nil
			})
		},
	}
}

func withHistory(ctx *commandContext, fn func(*history.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	return openHistory(cfg, fn)
}

func openHistory(cfg *config.Config, fn func(*history.Store) error) error {
	if !cfg.History.Enabled {
		return errHistoryDisabled
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func historyRows(style outputStyle, entries []history.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		when := ""
		if !entry.CreatedAt.IsZero() {
			when = entry.CreatedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{
			strconv.FormatInt(entry.ID, 10),
			when,
			style.outcomeLabel(entry.Outcome),
			entry.Query,
			entry.URL,
		})
	}
	return rows
}
