package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smith505/ideafit/internal/config"
	"github.com/smith505/ideafit/internal/db"
	"github.com/smith505/ideafit/internal/fit"
	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/llm"
	"github.com/smith505/ideafit/internal/logger"
	"github.com/smith505/ideafit/internal/mailer"
	"github.com/smith505/ideafit/internal/report"
	"github.com/smith505/ideafit/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveLibrary    string
	serveBaseURL    string
	serveJSONLogs   bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes ranking, report, and checkout-webhook endpoints.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values; secrets come from the environment.`,
	RunE: runServe,
}

func init() {
	// Config file flag (processed first)
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLibrary, "library", "", "Path to the idea library JSON document (or LIBRARY_PATH)")
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "Public base URL used in report links")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// serveConfig assembles the effective configuration: config file, then flag
// overrides, then environment fallbacks, then defaults.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("library") {
		cfg.Library = serveLibrary
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = serveBaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Library:        os.Getenv("LIBRARY_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		CheckoutSecret: os.Getenv("CHECKOUT_WEBHOOK_SECRET"),
		TokenSecret:    os.Getenv("TOKEN_SECRET"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		SESRegion:      os.Getenv("SES_REGION"),
		FromEmail:      os.Getenv("FROM_EMAIL"),
	})
	cfg = cfg.MergeWithDefaults(config.Config{
		Port:    8080,
		BaseURL: "http://localhost:8080",
	})

	if cfg.Library == "" {
		return cfg, fmt.Errorf("--library flag or LIBRARY_PATH environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.CheckoutSecret == "" {
		return cfg, fmt.Errorf("CHECKOUT_WEBHOOK_SECRET environment variable is required")
	}
	if cfg.TokenSecret == "" {
		return cfg, fmt.Errorf("TOKEN_SECRET environment variable is required")
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(serveJSONLogs, serveDebug || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	lib, err := library.Load(cfg.Library)
	if err != nil {
		return fmt.Errorf("failed to load idea library: %w", err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	tokens, err := server.NewTokenService(cfg.TokenSecret, 0)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	deps := server.Deps{
		Store:  database,
		Ranker: fit.NewRanker(lib),
		Tokens: tokens,
		Logger: log,
	}

	// Expansion is optional: without an API key, paid reports stay un-expanded.
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		deps.Expander = report.NewExpander(client, log)
	} else {
		log.Warn("GEMINI_API_KEY not set, paid-report expansion disabled")
	}

	// Email is optional: without SES config, unlock links are webhook-only.
	if cfg.SESRegion != "" {
		m, err := mailer.NewSES(ctx, cfg.SESRegion, cfg.FromEmail)
		if err != nil {
			return fmt.Errorf("failed to create mailer: %w", err)
		}
		deps.Mailer = m
	} else {
		log.Warn("SES_REGION not set, report emails disabled")
	}

	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN not set, report listing disabled")
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		BaseURL:        cfg.BaseURL,
		CheckoutSecret: cfg.CheckoutSecret,
		AdminToken:     cfg.AdminToken,
		RankLimit:      cfg.RankLimit,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
