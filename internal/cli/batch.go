package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/legalens/legalens/internal/pipeline"
	"github.com/legalens/legalens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple contracts in parallel",
	Long: `Batch analyzes multiple contract files concurrently:
- Pass a directory to analyze every supported contract file in it
- Pass a list file (one path per line, # for comments) to pick files
- Generate a JSON and Markdown report per contract
- One failed contract never aborts the batch

Example:
  legalens batch ./contracts
  legalens batch contracts.txt --concurrency 8 --output-dir ./reports
  legalens batch ./contracts --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (config default when 0)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./legalens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM classification, summary and compliance review")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	// Build configuration
	cfg := buildConfig()
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !noFooter
	if concurrency > 0 {
		cfg.Concurrency.BatchWorkers = concurrency
	}

	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	paths, err := collectInputPaths(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no contract files found in %s", input)
	}

	fmt.Fprintf(os.Stderr, "Input:    %s\n", input)
	fmt.Fprintf(os.Stderr, "Files:    %d\n", len(paths))
	fmt.Fprintf(os.Stderr, "Workers:  %d\n", cfg.Concurrency.BatchWorkers)
	fmt.Fprintf(os.Stderr, "Output:   %s\n", outputDir)
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "LLM:      %s\n", llmProvider)
	}
	fmt.Fprintln(os.Stderr)

	// Create output directory
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer := pipeline.NewAnalyzer(cfg)
	defer func() { _ = analyzer.Close() }()

	processor := worker.NewBatchProcessor(analyzer, cfg.Concurrency.BatchWorkers)
	results := processor.ProcessPaths(ctx, paths)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Error)
			continue
		}

		slug := reportSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "OK   %s (risk %.0f/100 %s)\n",
			result.Path, result.Report.RiskAssessment.OverallScore, result.Report.RiskAssessment.OverallLevel)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Analyzed: %d  Failed: %d  Reports: %s\n", successCount, failureCount, outputDir)

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d contracts failed", failureCount)
	}
	return nil
}

// collectInputPaths resolves the batch input: a directory is scanned for
// supported contract files, anything else is read as a path list
func collectInputPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return worker.CollectContractFiles(input)
	}
	return worker.ReadPathsFromFile(input)
}

// reportSlug derives an output file stem from a contract path
func reportSlug(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, " ", "-")
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		return "report"
	}
	return name
}
