package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"iatv/internal/store"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the transcript cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				records, err := st.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list cache: %w", err)
				}

				if jsonOutput {
					return writeJSON(cmd, records)
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "Cache is empty")
					return nil
				}

				headers := []string{"Identifier", "Range", "Segments", "Fetched"}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						rec.Identifier,
						fmt.Sprintf("%d-%ds", rec.StartSeconds, rec.EndSeconds),
						strconv.Itoa(len(rec.Segments)),
						rec.FetchedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}
				if stdoutIsTerminal() {
					fmt.Fprintln(out, renderTable(headers, rows, aligns))
				} else {
					fmt.Fprintln(out, renderPlainTable(headers, rows))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit cache entries as JSON")
	return cmd
}

func newCacheRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <identifier>",
		Short: "Remove cached transcripts for a broadcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				removed, err := st.Delete(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("remove cache entries: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached transcript(s)\n", removed)
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
				return nil
			})
		},
	}
}
