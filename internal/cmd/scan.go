package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/urlscout/urlscout-go/internal/common/logger"
	"github.com/urlscout/urlscout-go/internal/common/monitor"
	"github.com/urlscout/urlscout-go/internal/config"
	"github.com/urlscout/urlscout-go/internal/language"
	"github.com/urlscout/urlscout-go/internal/output"
	"github.com/urlscout/urlscout-go/internal/scanner"
	"github.com/urlscout/urlscout-go/internal/walker"
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan files and directories for URLs",
	Long: `Scan the given files and directories for URLs embedded in string
literals, comments, and raw text. Directories are expanded to their
contained files; inside a git worktree only tracked files are scanned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntP("workers", "w", 5, "Number of files scanned concurrently")
	scanCmd.Flags().IntP("context", "C", 0, "Context lines around each match (0 = none)")
	scanCmd.Flags().Bool("comments", false, "Also report URLs found in comments")
	scanCmd.Flags().Bool("fallback", true, "Scan unsupported file types as raw text")
	scanCmd.Flags().Bool("include-non-fqdn", false, "Include single-label hosts such as localhost")
	scanCmd.Flags().StringSlice("ignore-domain", nil, "Domain to ignore, including subdomains (repeatable)")
	scanCmd.Flags().String("ignore-file", "", "YAML file with an ignore-domain list")
	scanCmd.Flags().Bool("fail-fast", false, "Abort on the first file failure")
	scanCmd.Flags().Bool("keep-empty", true, "Keep files with zero matches in the output")
	scanCmd.Flags().StringSlice("exclude", nil, "Glob pattern of paths to skip (repeatable)")
	scanCmd.Flags().StringP("format", "f", "table", "Output format: table, json, or csv")
	scanCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")

	viper.BindPFlag("scan.concurrency", scanCmd.Flags().Lookup("workers"))
	viper.BindPFlag("scan.context_lines", scanCmd.Flags().Lookup("context"))
	viper.BindPFlag("scan.include_comments", scanCmd.Flags().Lookup("comments"))
	viper.BindPFlag("scan.enable_fallback", scanCmd.Flags().Lookup("fallback"))
	viper.BindPFlag("scan.fail_fast", scanCmd.Flags().Lookup("fail-fast"))
	viper.BindPFlag("filter.include_non_fqdn", scanCmd.Flags().Lookup("include-non-fqdn"))
	viper.BindPFlag("filter.ignore_domains", scanCmd.Flags().Lookup("ignore-domain"))
	viper.BindPFlag("filter.keep_empty_files", scanCmd.Flags().Lookup("keep-empty"))
	viper.BindPFlag("output.format", scanCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.path", scanCmd.Flags().Lookup("output"))
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ignoreFile, _ := cmd.Flags().GetString("ignore-file")
	if ignoreFile != "" {
		domains, err := config.LoadIgnoreDomains(ignoreFile)
		if err != nil {
			return err
		}
		cfg.Filter.IgnoreDomains = append(cfg.Filter.IgnoreDomains, domains...)
	}

	excludes, _ := cmd.Flags().GetStringSlice("exclude")
	w := walker.New(walker.Options{Excludes: excludes, UseGit: true}, logger.L())
	files, err := w.Collect(args)
	if err != nil {
		return err
	}

	logger.Info("Starting URL scan",
		zap.Int("files", len(files)),
		zap.Int("workers", cfg.Scan.Concurrency))

	var progress *monitor.Monitor
	if debug {
		progress = monitor.New(5 * time.Second)
		progress.Start()
		defer progress.Stop()
	}

	registry := language.DefaultRegistry(logger.L())
	s, err := scanner.New(scanner.Options{
		Concurrency:     cfg.Scan.Concurrency,
		IncludeComments: cfg.Scan.IncludeComments,
		EnableFallback:  cfg.Scan.EnableFallback,
		IncludeNonFQDN:  cfg.Filter.IncludeNonFQDN,
		ContextLines:    cfg.Scan.ContextLines,
		FailFast:        cfg.Scan.FailFast,
		IgnoreDomains:   cfg.Filter.IgnoreDomains,
		KeepEmptyFiles:  cfg.Filter.KeepEmptyFiles,
		PoolCapacity:    cfg.Scan.PoolCapacity,
		Schemes:         cfg.Scan.Schemes,
		Progress:        progress,
	}, registry, logger.L())
	if err != nil {
		return err
	}
	defer s.Close()

	outcome, err := s.Scan(context.Background(), files)
	if err != nil {
		return err
	}

	logger.Info("Scan completed",
		zap.Int("files_scanned", outcome.FilesScanned),
		zap.Int("total_urls", outcome.TotalURLs),
		zap.Int("unique_urls", outcome.UniqueURLs))

	var out io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return output.Write(out, output.Format(cfg.Output.Format), outcome)
}

// buildConfig layers viper state (flags, config file, env) over the
// defaults.
func buildConfig() *config.Config {
	cfg := config.DefaultConfig()

	cfg.Scan.Concurrency = viper.GetInt("scan.concurrency")
	cfg.Scan.ContextLines = viper.GetInt("scan.context_lines")
	cfg.Scan.IncludeComments = viper.GetBool("scan.include_comments")
	cfg.Scan.EnableFallback = viper.GetBool("scan.enable_fallback")
	cfg.Scan.FailFast = viper.GetBool("scan.fail_fast")
	if viper.IsSet("scan.pool_capacity") {
		cfg.Scan.PoolCapacity = viper.GetInt("scan.pool_capacity")
	}
	if viper.IsSet("scan.schemes") {
		cfg.Scan.Schemes = viper.GetStringSlice("scan.schemes")
	}
	cfg.Filter.IncludeNonFQDN = viper.GetBool("filter.include_non_fqdn")
	cfg.Filter.IgnoreDomains = viper.GetStringSlice("filter.ignore_domains")
	cfg.Filter.KeepEmptyFiles = viper.GetBool("filter.keep_empty_files")
	cfg.Output.Format = viper.GetString("output.format")
	cfg.Output.Path = viper.GetString("output.path")

	return cfg
}
