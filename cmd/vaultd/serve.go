package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultmd/vaultd/internal/server"
	"github.com/vaultmd/vaultd/internal/version"
)

func init() {
	rootCmd.AddCommand(newServeCmd())
}

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the vaultd server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config, err := loadServerConfig(cmd)
			if err != nil {
				return err
			}

			showVaultdHeader()
			slog.Info("vaultd", "version", version.Version, "revision", version.Revision, "build", version.BuildDate)

			srv, err := server.New(config)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			if err := srv.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("server start", "error", err)
				return err
			}
			return nil
		},
	}

	serveCmd.Flags().SortFlags = false
	serveCmd.Flags().StringP("config", "c", "", "Path to a vaultd config file")
	serveCmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	serveCmd.Flags().StringP("vault", "d", defaultVaultDir, "Vault root directory")
	return serveCmd
}

// loadServerConfig merges, in precedence order, serve flags, VAULTD_
// environment variables and the YAML config file into a server config.
func loadServerConfig(cmd *cobra.Command) (*server.Config, error) {
	v := viper.New()
	v.SetDefault("server.bind", server.DefaultAddr)
	v.SetDefault("vault.location", defaultVaultDir)

	// config path
	if cmd.Flag("config").Changed {
		configFilePath, _ := cmd.Flags().GetString("config")
		v.SetConfigFile(configFilePath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".vaultd"))
		v.AddConfigPath(filepath.Join(home, ".config/vaultd"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !enoent && !notFound {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	// Bind flags to viper
	v.BindPFlag("server.bind", cmd.Flags().Lookup("bind"))
	v.BindPFlag("vault.location", cmd.Flags().Lookup("vault"))

	// Set up environment variables
	v.SetEnvPrefix("VAULTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &server.Config{
		HTTP: server.HTTPConfig{
			Addr:      v.GetString("server.bind"),
			CertFile:  v.GetString("http.cert_file"),
			KeyFile:   v.GetString("http.key_file"),
			RateLimit: v.GetString("http.rate_limit"),
		},
		Vault: server.VaultConfig{
			Location: v.GetString("vault.location"),
		},
	}, nil
}
