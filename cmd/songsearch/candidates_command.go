package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"songsearch/internal/lookup"
)

func newCandidatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <query...>",
		Short: "Show every catalog candidate and which one is selected",
		Long: `List the candidates the catalog returned for a query, whether each one is
classified as a live recording, and which candidate the live filter selects.
Useful for troubleshooting unexpected results. Candidate lookups are not
journaled.`,
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
			lookupCtx, _ := lookupContext(cmd)
			inspection := resolver.Inspect(lookupCtx, query)
			resp := resolver.Render(inspection.Outcome)

			style := styleFor(cmd)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Query:        %s\n", inspection.Query)
			fmt.Fprintf(out, "Search term:  %s\n", inspection.Term)
			fmt.Fprintf(out, "Wants live:   %s\n", yesNo(inspection.WantsLive))
			if inspection.Outcome.Kind != lookup.KindTransportFailure && inspection.Outcome.Kind != lookup.KindParseFailure {
				fmt.Fprintf(out, "Result count: %d\n", inspection.Payload.ResultCount)
			}

			if len(inspection.Candidates) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, style.renderTable(
					[]string{"#", "Track", "Collection", "Kind", "Live", "Chosen"},
					candidateRows(inspection.Candidates),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Outcome:      %s\n", style.outcomeLabel(inspection.Outcome.Kind.String()))
			if inspection.Outcome.Err != nil {
				fmt.Fprintf(out, "Reason:       %v\n", inspection.Outcome.Err)
			}
			fmt.Fprintf(out, "Response:     %s\n", resp.URL)
			if resp.AlbumCover != "" {
				fmt.Fprintf(out, "Album cover:  %s\n", resp.AlbumCover)
			}
			return nil
		},
	}
}

func candidateRows(candidates []lookup.InspectedCandidate) [][]string {
	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		kind := c.Candidate.Kind
		if kind == "" {
			kind = c.Candidate.WrapperType
		}
		chosen := ""
		if c.Chosen {
			chosen = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Candidate.TrackName,
			c.Candidate.CollectionName,
			kind,
			yesNo(c.Live),
			chosen,
		})
	}
	return rows
}
