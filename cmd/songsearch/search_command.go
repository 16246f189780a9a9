package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Resolve a song query to a catalog track",
		Long: `Search the configured catalog and print the selected track URL and album
cover. Lookups that fail print a sentinel result instead of an error:

  Apple Music: Request error   catalog unreachable or returned an error status
  Apple Music: Parsing error   catalog returned an undecodable payload
  Apple Music: No result       nothing matched the query

Include the word "live" in the query to prefer live recordings.

Examples:
  songsearch search Bohemian Rhapsody
  songsearch search "Bohemian Rhapsody live" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return errors.New("query must not be empty")
			}

			logger := ctx.loggerFor(cfg)
			resolver := ctx.newResolver(cfg, logger)
			lookupCtx, correlationID := lookupContext(cmd)

			inspection := resolver.Inspect(lookupCtx, query)
			resp := resolver.Render(inspection.Outcome)
			ctx.journal(lookupCtx, cfg, logger, correlationID, inspection, resp)

			if asJSON {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.URL)
			if resp.AlbumCover != "" {
				fmt.Fprintf(out, "Album cover: %s\n", resp.AlbumCover)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}
