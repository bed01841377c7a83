package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

func init() {
	rootCmd.AddCommand(newPatchCmd())
}

func newPatchCmd() *cobra.Command {
	var diff string
	var fromFile string
	var content string
	var ifMatch string

	cmd := &cobra.Command{
		Use:   "patch <path>",
		Short: "Apply a diff to an existing vault file",
		Long: `Apply a delta to an existing vault file.

The delta is either a line diff (ndiff or unified format) passed with
--diff or --from-file, or full replacement content passed with
--content. With --if-match the patch only applies while the file still
has the given fingerprint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			diffBody, err := readContent(cmd, diff, fromFile)
			if err != nil {
				return err
			}

			sdk, err := newSDK(cmd)
			if err != nil {
				return err
			}
			defer sdk.Close()

			resp, err := sdk.Files.Patch(cmd.Context(), &vaultsdk.PatchFileParams{
				Path:                args[0],
				Diff:                diffBody,
				Content:             content,
				ExpectedFingerprint: ifMatch,
			})
			if err != nil {
				if vaultsdk.IsConflict(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: the file changed since you read it, fetch it again and retry\n", red("conflict"))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", green("patched"), args[0], resp.Fingerprint)
			return nil
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(&diff, "diff", "d", "", "Inline diff")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "Read the diff from a local file ('-' for stdin)")
	cmd.Flags().StringVarP(&content, "content", "m", "", "Full replacement content instead of a diff")
	cmd.Flags().StringVar(&ifMatch, "if-match", "", "Only patch while the file has this fingerprint")
	return cmd
}
