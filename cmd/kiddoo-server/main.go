// kiddoo-server runs the mental state analysis HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kiddoo/internal/alert"
	"kiddoo/internal/analysis"
	"kiddoo/internal/config"
	"kiddoo/internal/lexicon"
	"kiddoo/internal/observability"
	"kiddoo/internal/sentiment"
	"kiddoo/internal/server"
)

var (
	configPath  string
	listenPort  int
	lexiconPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kiddoo-server",
		Short: "Mental state analysis API server",
		Long:  "Serves deterministic mental state analysis, SOS alert dispatch, and health endpoints over HTTP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default: ./config.yaml)")
	rootCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "override the listen port")
	rootCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "override the lexicon file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listenPort > 0 {
		cfg.Server.Port = listenPort
	}
	if lexiconPath != "" {
		cfg.Lexicon.Path = lexiconPath
	}

	obsCfg, err := observability.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:  obsCfg.Logging.Level,
		Format: obsCfg.Logging.Format,
	})

	metrics, err := observability.NewMetricsCollector(obsCfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	tracer, err := observability.NewTracerProvider(obsCfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	dispatcher := alert.NewTwilioDispatcher(cfg.Alert.Twilio, logger)
	service := analysis.NewService(lex, sentiment.NewWordlistPolarity(), dispatcher, logger, analysis.Options{
		Contacts: cfg.Alert.Contacts,
		Metrics:  metrics,
		Tracer:   tracer,
	})

	srv, err := server.New(cfg.Server, service, logger, metrics)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown", "error", err)
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer shutdown", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
