package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cxxtools/lintport/formatter"
	"github.com/cxxtools/lintport/internal/rules"
	"github.com/cxxtools/lintport/internal/sink"
	"github.com/cxxtools/lintport/internal/types"
	"github.com/cxxtools/lintport/report"
)

var (
	importJSONOutput bool
	outPath          string
)

var importCmd = &cobra.Command{
	Use:   "import [reports...]",
	Short: "Import PC-lint XML reports and print the findings",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide report file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runImport(ctx, logger, args, importJSONOutput, outPath)
	},
}

func init() {
	importCmd.Flags().BoolVar(&importJSONOutput, "json", false, "Output findings in JSON format")
	importCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runImport(ctx context.Context, logger *zap.Logger, paths []string, isJson bool, jsonOutput string) {
	collector := &sink.Collector{}

	parsed, err := report.Process(ctx, logger, paths, sink.NewDeduper(collector))
	if err != nil {
		logger.Error("Error processing reports", zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("reports parsed", zap.Int("reports", parsed), zap.Int("findings", len(collector.Issues)))

	warnUnknownRules(logger, loadRepository(logger), collector.Issues)

	printIssues(logger, collector.Issues, isJson, jsonOutput)

	if len(collector.Issues) > 0 {
		os.Exit(1)
	}
}

func loadRepository(logger *zap.Logger) *rules.Repository {
	if rulesFile == "" {
		return rules.Default()
	}
	repo, err := rules.Load(rulesFile)
	if err != nil {
		logger.Error("Error loading rule repository", zap.String("path", rulesFile), zap.Error(err))
		return rules.Default()
	}
	return repo
}

func warnUnknownRules(logger *zap.Logger, repo *rules.Repository, issues []types.ReportIssue) {
	if repo.Len() == 0 {
		return
	}
	for _, issue := range issues {
		if !repo.Known(issue.RuleID) {
			logger.Warn("finding references a rule missing from the repository",
				zap.String("rule", issue.RuleID))
		}
	}
}

func printIssues(logger *zap.Logger, issues []types.ReportIssue, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Print(formatter.GenerateFormattedIssue(issues))
		return
	}

	d, err := json.Marshal(issues)
	if err != nil {
		logger.Error("Error marshalling findings to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating output file", zap.String("path", jsonOutput), zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing output file", zap.String("path", jsonOutput), zap.Error(err))
	}
}
