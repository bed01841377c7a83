package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

func init() {
	rootCmd.AddCommand(newJournalCmd())
}

func newJournalCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal [path]",
		Short: "List recorded file revisions, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			resp, err := sdk.Journal.List(cmd.Context(), &vaultsdk.JournalListParams{
				Path:  path,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			if len(resp.Revisions) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no revisions")
				return nil
			}
			for _, rev := range resp.Revisions {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-9s %-10s %s\n",
					rev.Op, humanize.Bytes(uint64(rev.Size)), formatWhen(rev.CreatedAt), rev.Path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum revisions to list")
	return cmd
}

func formatWhen(createdAt string) string {
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return createdAt
	}
	return humanize.Time(t)
}
