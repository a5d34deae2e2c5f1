package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iatv/internal/archive"
)

func newStationsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "stations",
		Short:       "List station codes and their networks",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := archive.StationCodes()

			if jsonOutput {
				stations := make(map[string]string, len(codes))
				for _, code := range codes {
					name, _ := archive.NetworkName(code)
					stations[code] = name
				}
				return writeJSON(cmd, stations)
			}

			headers := []string{"Code", "Network"}
			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				name, _ := archive.NetworkName(code)
				rows = append(rows, []string{code, name})
			}

			out := cmd.OutOrStdout()
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(headers, rows, nil))
			} else {
				fmt.Fprintln(out, renderPlainTable(headers, rows))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the station map as JSON")
	return cmd
}
