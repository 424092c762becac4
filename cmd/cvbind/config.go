package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/config"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print binding reports")
}

// loadConfig resolves the configuration in order: config file, environment,
// command flags (through override), then built-in defaults.
func loadConfig(cmd *cobra.Command, override func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if override != nil {
		override(&cfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setDataLocation applies --data-dir / --data-url flags, keeping them mutually exclusive.
func setDataLocation(cmd *cobra.Command, cfg *config.Config, dir, url string) {
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dir
		cfg.DataURL = ""
	}
	if cmd.Flags().Changed("data-url") {
		cfg.DataURL = url
		cfg.DataDir = ""
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func fetchOptions(cfg config.Config) *fetch.Options {
	opts := fetch.DefaultOptions()
	if cfg.FetchTimeoutSeconds > 0 {
		opts.Timeout = cfg.FetchTimeout()
	}
	return opts
}

func requireSkeleton(cfg config.Config) error {
	if cfg.Skeleton == "" {
		return fmt.Errorf("--skeleton is required (via flag, config, or %s)", config.EnvSkeleton)
	}
	return nil
}
