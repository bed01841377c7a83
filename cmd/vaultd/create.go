package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	var content string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new vault file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			body, err := readContent(cmd, content, fromFile)
			if err != nil {
				return err
			}

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			resp, err := sdk.Files.Create(cmd.Context(), &vaultsdk.CreateFileParams{
				Path:    args[0],
				Content: body,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", green("created"), args[0], resp.Fingerprint)
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(&content, "content", "m", "", "Inline file content")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "Read content from a local file ('-' for stdin)")
	return cmd
}
