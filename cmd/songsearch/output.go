package main

import (
	"encoding/json"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"songsearch/internal/lookup"
	"songsearch/internal/textutil"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputStyle controls how tables are drawn for the current stdout.
type outputStyle struct {
	color bool
	boxed bool
}

func styleFor(cmd *cobra.Command) outputStyle {
	terminal := isTerminal(cmd.OutOrStdout())
	_, noColor := os.LookupEnv("NO_COLOR")
	return outputStyle{color: terminal && !noColor, boxed: terminal}
}

func (s outputStyle) renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if s.boxed {
		tw.SetStyle(table.StyleRounded)
	} else {
		style := table.StyleLight
		style.Options.DrawBorder = false
		style.Options.SeparateColumns = false
		style.Options.SeparateHeader = true
		tw.SetStyle(style)
	}

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// outcomeLabel renders an outcome kind for humans, colored on terminals.
func (s outputStyle) outcomeLabel(kind string) string {
	label := textutil.TitleCase(kind)
	if !s.color {
		return label
	}
	switch kind {
	case lookup.KindSelected.String():
		return text.FgGreen.Sprint(label)
	case lookup.KindNoMatch.String():
		return text.FgYellow.Sprint(label)
	default:
		return text.FgRed.Sprint(label)
	}
}
