package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <identifier>",
		Short: "Display metadata for a broadcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.archiveClient()
			if err != nil {
				return err
			}

			meta, err := client.ShowMetadata(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("show metadata: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, meta)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Identifier: %s\n", meta.Identifier)
			fmt.Fprintf(out, "Title:      %s\n", displayTitle(meta.Identifier, meta.Title))
			fmt.Fprintf(out, "Runtime:    %s\n", formatRuntime(meta.RuntimeSeconds))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit metadata as JSON")
	return cmd
}
