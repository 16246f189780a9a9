package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"songsearch/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check catalog reachability and local paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			style := styleFor(cmd)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, style.checkLabel(r), r.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				nil,
			))

			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func (s outputStyle) checkLabel(r preflight.Result) string {
	label, color := "FAIL", text.FgRed
	switch {
	case r.Skipped:
		label, color = "SKIP", text.FgHiBlack
	case r.Passed:
		label, color = "OK", text.FgGreen
	}
	if !s.color {
		return label
	}
	return color.Sprint(label)
}
