package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

// newSDK builds a client against the --server flag, with the
// VAULTD_SERVER_URL environment variable as fallback.
func newSDK(cmd *cobra.Command) (*vaultsdk.VaultSDK, error) {
	serverURL, _ := cmd.Flags().GetString("server")
	if envURL := os.Getenv("VAULTD_SERVER_URL"); envURL != "" && !cmd.Flag("server").Changed {
		serverURL = envURL
	}
	return vaultsdk.New(serverURL)
}

// readContent resolves the content for create/update/patch commands:
// an inline --content value, a local file, or stdin when the file
// argument is "-".
func readContent(cmd *cobra.Command, content, fromFile string) (string, error) {
	switch {
	case content != "":
		return content, nil
	case fromFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", fromFile, err)
		}
		return string(data), nil
	default:
		return "", nil
	}
}
