package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iatv/internal/archive"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var channel string
	var timeFacet string
	var rows int
	var start int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the TV News Archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.archiveClient()
			if err != nil {
				return err
			}

			items, err := client.SearchItems(cmd.Context(), args[0], archive.SearchOptions{
				Channel: channel,
				Time:    timeFacet,
				Rows:    rows,
				Start:   start,
			})
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No results")
				return nil
			}

			headers := []string{"Identifier", "Title", "Snippet"}
			tableRows := make([][]string, 0, len(items))
			for _, item := range items {
				tableRows = append(tableRows, []string{
					item.Identifier,
					displayTitle(item.Identifier, item.Title),
					truncate(item.Snippet, 60),
				})
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(headers, tableRows, nil))
			} else {
				fmt.Fprintln(out, renderPlainTable(headers, tableRows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "Restrict to a station code (see `iatv stations`)")
	cmd.Flags().StringVar(&timeFacet, "time", "", "Restrict to a date facet: YYYY, YYYYMM, or YYYYMMDD")
	cmd.Flags().IntVar(&rows, "rows", 10, "Maximum number of results")
	cmd.Flags().IntVar(&start, "start", 0, "Result offset for paging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
