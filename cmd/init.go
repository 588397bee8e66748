package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cxxtools/lintport/internal/rules"
)

// initCmd: lintport init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a starter rule repository file",
	Run: func(cmd *cobra.Command, args []string) {
		path := rulesFile
		if path == "" {
			path = "pclint-rules.yaml"
		}
		if err := rules.WriteStarter(path); err != nil {
			logger.Error("Error initializing rule repository file", zap.Error(err))
			return
		}
		fmt.Printf("Rule repository file created/updated: %s\n", path)
	},
}
