package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

func init() {
	rootCmd.AddCommand(newSearchCmd())
}

func newSearchCmd() *cobra.Command {
	var byFilename bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search vault files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			var resp *vaultsdk.SearchResponse
			if byFilename {
				resp, err = sdk.Search.Filename(cmd.Context(), args[0])
			} else {
				resp, err = sdk.Search.Content(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if len(resp.Matches) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
				return nil
			}
			for _, match := range resp.Matches {
				fmt.Fprintln(cmd.OutOrStdout(), match)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&byFilename, "filename", "n", false, "Match file names instead of contents")
	return cmd
}
