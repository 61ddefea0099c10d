// Command web serves the TalentHub onboarding frontend.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kiran7893/talenthub-frontend/internal/apiclient"
	"github.com/kiran7893/talenthub-frontend/internal/app"
	"github.com/kiran7893/talenthub-frontend/internal/config"
	pkgconfig "github.com/kiran7893/talenthub-frontend/pkg/config"
	"github.com/kiran7893/talenthub-frontend/pkg/httpclient"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "talenthub-web",
		Short:         "TalentHub onboarding web frontend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// An explicit --env-file must exist; the default .env is optional.
			return pkgconfig.LoadDotEnv(!cmd.Flags().Changed("env-file"), envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load and validate configuration, then print the resolved API base URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			api, err := apiclient.New(apiclient.Config{
				BaseURL:    cfg.APIURL,
				PathPrefix: cfg.APIPathPrefix,
			}, httpclient.New(httpclient.DefaultConfig()), slog.Default())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK\napi base url: %s\nsession backend: %s\n",
				api.BaseURL(), cfg.SessionBackend)
			return nil
		},
	})
	return cfgCmd
}

func run(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("talenthub-web", cfg.LogLevel)
	log.Info("starting web frontend",
		slog.String("environment", cfg.Environment),
		slog.String("version", app.Version),
		slog.Int("http_port", cfg.HTTPPort),
	)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		return err
	}

	log.Info("web frontend stopped")
	return nil
}
