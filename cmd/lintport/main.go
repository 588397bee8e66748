package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cxxtools/lintport/cmd"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cmd.Execute(logger); err != nil {
		os.Exit(1)
	}
}
