package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/config"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/observability"
	"github.com/jonathan/cv-online/internal/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Bind one language into the skeleton",
	Long: `Loads the HTML skeleton, fetches the content record for --lang and writes the
bound document. The record is read from --data (a single file), --data-dir
(data_<lang>.json files) or --data-url (a site serving /data_<lang>.json).`,
	RunE: runApply,
}

var (
	applySkeleton string
	applyData     string
	applyDataDir  string
	applyDataURL  string
	applyLang     string
	applyOutput   string
	applyReport   string
)

func init() {
	applyCmd.Flags().StringVarP(&applySkeleton, "skeleton", "s", "", "Path or URL of the HTML skeleton")
	applyCmd.Flags().StringVarP(&applyData, "data", "d", "", "Path to a single content record JSON file")
	applyCmd.Flags().StringVar(&applyDataDir, "data-dir", "", "Directory holding data_<lang>.json files")
	applyCmd.Flags().StringVar(&applyDataURL, "data-url", "", "Base URL serving /data_<lang>.json")
	applyCmd.Flags().StringVarP(&applyLang, "lang", "l", "", "Language to apply (en, de, fr); defaults to the configured default language")
	applyCmd.Flags().StringVarP(&applyOutput, "out", "o", "", "Path to output HTML file (default: stdout)")
	applyCmd.Flags().StringVar(&applyReport, "report", "", "Path to write the binding report JSON")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("data") && (cmd.Flags().Changed("data-dir") || cmd.Flags().Changed("data-url")) {
		return fmt.Errorf("--data is mutually exclusive with --data-dir and --data-url")
	}

	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("skeleton") {
			cfg.Skeleton = applySkeleton
		}
		if cmd.Flags().Changed("lang") {
			cfg.DefaultLang = applyLang
		}
		setDataLocation(cmd, cfg, applyDataDir, applyDataURL)
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

	var source fetch.Source
	if applyData != "" {
		source = &fetch.FileSource{Path: applyData}
	} else {
		source = fetch.NewSource(cfg.DataLocation(), fetchOptions(cfg))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	skeleton, err := fetch.LoadSkeleton(ctx, cfg.Skeleton, fetchOptions(cfg))
	if err != nil {
		return err
	}

	html, report, err := bindLanguage(ctx, skeleton, source, lang, logger)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}

	if applyReport != "" {
		if err := writeJSON(applyReport, report); err != nil {
			return err
		}
	}

	if applyOutput == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if err := writeFile(applyOutput, []byte(html)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s (%s, %d applied)\n", applyOutput, lang, report.Count(binding.Applied))
	return nil
}

// bindLanguage renders skeleton with the record of lang. A fetch or parse
// failure is returned before any document is built.
func bindLanguage(ctx context.Context, skeleton *fetch.Skeleton, source fetch.Source, lang types.Language, logger *zap.Logger) (string, *binding.Report, error) {
	record, err := source.Fetch(ctx, lang)
	if err != nil {
		logger.Error("failed to load language data", zap.String("lang", lang.String()), zap.Error(err))
		return "", nil, fmt.Errorf("failed to load %s content: %w", lang, err)
	}

	doc, err := skeleton.Document()
	if err != nil {
		return "", nil, err
	}
	binding.DedupeContacts(doc)
	report := binding.NewBinder(binding.WithLogger(logger)).Apply(doc, record, lang)
	binding.MarkActiveLanguage(doc, lang)

	html, err := fetch.RenderDocument(doc)
	if err != nil {
		return "", nil, err
	}
	return html, report, nil
}

func writeFile(path string, data []byte) error {
	// Ensure output directory exists
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeFile(path, data)
}
