package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDailyCmd())
}

func newDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Print today's daily note, creating it if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			note, err := sdk.Daily.Get(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), cyan(note.Path))
			fmt.Fprint(cmd.OutOrStdout(), note.Content)
			return nil
		},
	}
}
