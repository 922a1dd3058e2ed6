package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"chanlog/internal/logging"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the severity scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, ordinals := logging.LevelNames()
			rows := make([][]string, 0, len(names))
			for i, name := range names {
				label := logging.LevelLabel(ordinals[i])
				if name == "off" {
					// Off disables a channel; nothing ever renders at it.
					label = "-"
				}
				rows = append(rows, []string{
					name,
					label,
					strconv.Itoa(int(ordinals[i])),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Level", "Label", "Ordinal"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}
