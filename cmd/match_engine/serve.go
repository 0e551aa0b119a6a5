package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/logger"
	"github.com/jonathan/talent-match/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes match scoring, ranking, and recommendation endpoints backed by the candidate and job stores.`,
	RunE:  runServe,
}

var (
	servePort     int
	serveConfig   string
	serveMinScore int
	serveLimit    int
	serveLogJSON  bool
	serveDebug    bool
)

func init() {
	// Default stays zero so a config-file port is not clobbered; the 8080
	// fallback applies after merging.
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&serveMinScore, "min-score", 0, "Default minimum score for ranked results")
	serveCmd.Flags().IntVar(&serveLimit, "limit", 0, "Default result limit per request")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig merges the command-line flags with an optional config
// file. Flags win where set; the port falls back to 8080 only after the file
// has had its say.
func resolveServeConfig() (config.Config, error) {
	cfg := config.Config{
		Port:     servePort,
		MinScore: serveMinScore,
		Limit:    serveLimit,
		LogJSON:  serveLogJSON,
		Debug:    serveDebug,
	}
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig()
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		MinScore:    cfg.MinScore,
		Limit:       cfg.Limit,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
