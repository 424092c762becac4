package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/config"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/observability"
	"github.com/jonathan/cv-online/internal/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every language into index_<lang>.html",
	Long: `Fetches the content records of all supported languages concurrently and writes one
bound page per language into --out-dir. Nothing is written unless every language succeeds.`,
	RunE: runBuild,
}

var (
	buildSkeleton string
	buildDataDir  string
	buildDataURL  string
	buildOutDir   string
	buildLangs    []string
)

func init() {
	buildCmd.Flags().StringVarP(&buildSkeleton, "skeleton", "s", "", "Path or URL of the HTML skeleton")
	buildCmd.Flags().StringVar(&buildDataDir, "data-dir", "", "Directory holding data_<lang>.json files")
	buildCmd.Flags().StringVar(&buildDataURL, "data-url", "", "Base URL serving /data_<lang>.json")
	buildCmd.Flags().StringVarP(&buildOutDir, "out-dir", "o", "dist", "Directory to write index_<lang>.html files into")
	buildCmd.Flags().StringSliceVar(&buildLangs, "langs", nil, "Languages to build (default: all supported)")

	rootCmd.AddCommand(buildCmd)
}

// buildResult is one rendered language
type buildResult struct {
	Lang   types.Language
	Path   string
	HTML   string
	Report *binding.Report
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("skeleton") {
			cfg.Skeleton = buildSkeleton
		}
		setDataLocation(cmd, cfg, buildDataDir, buildDataURL)
	})
	if err != nil {
		return err
	}
	if err := requireSkeleton(cfg); err != nil {
		return err
	}

	langs, err := parseLanguages(buildLangs)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	skeleton, err := fetch.LoadSkeleton(ctx, cfg.Skeleton, fetchOptions(cfg))
	if err != nil {
		return err
	}
	source := fetch.NewSource(cfg.DataLocation(), fetchOptions(cfg))

	results, err := buildLanguages(ctx, skeleton, source, langs, buildOutDir, logger)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, res := range results {
		if cfg.Verbose {
			printer.PrintReport(res.Report)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s (%d applied)\n", res.Path, res.Report.Count(binding.Applied))
	}
	return nil
}

// parseLanguages validates tags, defaulting to every supported language.
func parseLanguages(tags []string) ([]types.Language, error) {
	if len(tags) == 0 {
		return types.SupportedLanguages, nil
	}
	langs := make([]types.Language, 0, len(tags))
	seen := make(map[types.Language]bool)
	for _, tag := range tags {
		lang, err := types.ParseLanguage(tag)
		if err != nil {
			return nil, err
		}
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	return langs, nil
}

// buildLanguages renders langs concurrently and writes them only when all succeeded.
// Results keep the order of langs.
func buildLanguages(ctx context.Context, skeleton *fetch.Skeleton, source fetch.Source, langs []types.Language, outDir string, logger *zap.Logger) ([]buildResult, error) {
	results := make([]buildResult, len(langs))

	g, gctx := errgroup.WithContext(ctx)
	for i, lang := range langs {
		g.Go(func() error {
			html, report, err := bindLanguage(gctx, skeleton, source, lang, logger)
			if err != nil {
				return err
			}
			results[i] = buildResult{
				Lang:   lang,
				Path:   filepath.Join(outDir, "index_"+lang.String()+".html"),
				HTML:   html,
				Report: report,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		if err := writeFile(res.Path, []byte(res.HTML)); err != nil {
			return nil, err
		}
		logger.Info("language built", zap.String("lang", res.Lang.String()), zap.String("path", res.Path))
	}
	return results, nil
}
