package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/config"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/server"
	"github.com/jonathan/cv-online/internal/server/ratelimit"
	"github.com/jonathan/cv-online/internal/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live CV page",
	Long: `Start an HTTP server holding one live page. The default language is applied at
startup; POST /lang/{lang} switches the page, GET /render/{lang} renders a language
without touching the live page.`,
	RunE: runServe,
}

var (
	servePort        int
	serveSkeleton    string
	serveDataDir     string
	serveDataURL     string
	serveDefaultLang string
	serveAllowStale  bool
	serveRateLimit   int
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveSkeleton, "skeleton", "s", "", "Path or URL of the HTML skeleton")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory holding data_<lang>.json files (also served over HTTP)")
	serveCmd.Flags().StringVar(&serveDataURL, "data-url", "", "Base URL serving /data_<lang>.json")
	serveCmd.Flags().StringVar(&serveDefaultLang, "default-lang", "", "Language applied at startup")
	serveCmd.Flags().BoolVar(&serveAllowStale, "allow-stale", false, "Let slower, older language responses overwrite newer ones")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Fetching requests per client per minute (negative disables)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("skeleton") {
			cfg.Skeleton = serveSkeleton
		}
		if cmd.Flags().Changed("default-lang") {
			cfg.DefaultLang = serveDefaultLang
		}
		if cmd.Flags().Changed("allow-stale") {
			cfg.AllowStaleResponses = serveAllowStale
		}
		if cmd.Flags().Changed("rate-limit") {
			cfg.RateLimitPerMinute = serveRateLimit
		}
		setDataLocation(cmd, cfg, serveDataDir, serveDataURL)
	})
	if err != nil {
		return err
	}
	if err := requireSkeleton(cfg); err != nil {
		return err
	}

	lang, err := types.ParseLanguage(cfg.DefaultLang)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	skeleton, err := fetch.LoadSkeleton(ctx, cfg.Skeleton, fetchOptions(cfg))
	if err != nil {
		return err
	}

	srv, err := server.New(ctx, server.Config{
		Port:        cfg.Port,
		Skeleton:    skeleton,
		Source:      fetch.NewSource(cfg.DataLocation(), fetchOptions(cfg)),
		DataDir:     cfg.DataDir,
		DefaultLang: lang,
		AllowStale:  cfg.AllowStaleResponses,
		RateLimit:   ratelimit.PerMinute(cfg.RateLimitPerMinute),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("serving CV", zap.String("skeleton", cfg.Skeleton), zap.String("data", cfg.DataLocation()))
	return srv.Start(ctx)
}
