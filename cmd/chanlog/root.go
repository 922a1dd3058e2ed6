package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags loggingFlags

	ctx := newCommandContext(&configFlag, &flags)

	rootCmd := &cobra.Command{
		Use:           "chanlog",
		Short:         "Channel-scoped structured logging CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.level, "level", "", "Default level for channels without an override")
	rootCmd.PersistentFlags().StringVar(&flags.filters, "filters", "", "Per-channel overrides (NAME:level,...)")
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", "Encoding: pretty or json")
	rootCmd.PersistentFlags().BoolVar(&flags.threadID, "thread-id", false, "Attach goroutine ids to records")

	rootCmd.AddCommand(newLevelsCommand())
	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
