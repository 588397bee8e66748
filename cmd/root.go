package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rulesFile string
	timeout   time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "lintport",
	Short:            "lintport - import PC-lint XML reports into normalized findings",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: lintport [report1 report2 ...] => behaves like the import subcommand
		importCmd.Run(importCmd, args)
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for the whole import")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Path to the rule repository YAML file")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
}
