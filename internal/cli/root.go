// ABOUTME: Cobra root command for the pakgov command-line client
// ABOUTME: Loads configuration once and hands the wired app to subcommands

package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"pakgov-intel/api/middleware"
	"pakgov-intel/core/interfaces"
	"pakgov-intel/core/report"
	stdhttp "pakgov-intel/infrastructure/http/standard"
	logruslogger "pakgov-intel/infrastructure/logger/logrus"
	"pakgov-intel/pkg/config"
)

type ctxKey string

const appKey ctxKey = "app"

// App is what subcommands need to do their work
type App struct {
	Reports     interfaces.ReportRequester
	Logger      interfaces.Logger
	Concurrency int
	close       func() error
}

// Close releases resources held by the app
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// Builder wires an App for cmd from the given env file
type Builder func(cmd *cobra.Command, envFile string) (*App, error)

// Execute runs the CLI with the production wiring
func Execute() error {
	return NewRootCmd(BuildApp).Execute()
}

// NewRootCmd constructs the root command. build is called once before any
// subcommand that needs the report service.
func NewRootCmd(build Builder) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "pakgov",
		Short:         "Pakistan policy intelligence briefings from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			app, err := build(cmd, envFile)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, app))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app, ok := appFrom(cmd); ok {
				return app.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to a .env file with settings")

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newPresetsCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func appFrom(cmd *cobra.Command) (*App, bool) {
	if cmd.Context() == nil {
		return nil, false
	}
	app, ok := cmd.Context().Value(appKey).(*App)
	return app, ok
}

// BuildApp wires the report service the same way the server does, with
// logs sent to stderr so stdout carries only the briefing.
func BuildApp(cmd *cobra.Command, envFile string) (*App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logruslogger.New(logruslogger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Output:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	httpClient := stdhttp.NewStandardHTTPClient(0, stdhttp.WithTransport(&middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}))

	reports := report.NewReportService(report.Config{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		BaseURL:        cfg.Gemini.BaseURL,
		ThinkingBudget: cfg.Gemini.ThinkingBudget,
	}, interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	})

	return &App{
		Reports:     reports,
		Logger:      logger,
		Concurrency: report.DefaultBatchConcurrency,
		close:       logger.Close,
	}, nil
}
