package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vaultmd/vaultd/internal/server"
	"github.com/vaultmd/vaultd/internal/utils"
	"github.com/vaultmd/vaultd/internal/version"
)

var (
	home, _          = os.UserHomeDir()
	defaultVaultDir  = filepath.Join(home, "Vault")
	defaultServerURL = "http://" + server.DefaultAddr
)

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:     "vaultd",
	Short:   "Vaultd CLI",
	Version: version.Detailed(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("server", "s", defaultServerURL, "Vaultd server URL")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
}

func main() {
	// load a local .env before flags and config are read
	_ = godotenv.Load()

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	stdoutHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})

	handler := slog.Handler(stdoutHandler)
	if logFile != "" {
		file, err := openLogFile(logFile)
		if err != nil {
			return err
		}
		logInterceptor := utils.NewLogInterceptor(file)
		fileHandler := slog.NewTextHandler(logInterceptor, &slog.HandlerOptions{
			Level: level,
			// Do not include time as it is added by the log interceptor.
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		})
		handler = utils.NewMultiLogHandler(stdoutHandler, fileHandler)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// openLogFile truncates and opens the log file, creating parent
// directories as needed. It stays open for the life of the process.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func showVaultdHeader() {
	color.New(color.FgHiCyan, color.Bold).Println(version.ShortWithApp())
}
