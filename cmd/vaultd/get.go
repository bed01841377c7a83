package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	var showFingerprint bool

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print a vault file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			file, err := sdk.Files.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if showFingerprint {
				fmt.Fprintln(cmd.ErrOrStderr(), cyan(file.Fingerprint))
			}
			fmt.Fprint(cmd.OutOrStdout(), file.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "Print the content fingerprint to stderr")
	return cmd
}
