// Package report is the public entry point for importing PC-lint XML
// reports from files and directories.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/cxxtools/lintport/internal/pclint"
	"github.com/cxxtools/lintport/internal/sink"
)

// Process parses every report under the given paths and forwards the
// findings to s in source order. Directories are walked for .xml
// reports. Empty or unreadable reports are skipped with a log entry;
// the run continues. It returns the number of reports parsed.
func Process(ctx context.Context, logger *zap.Logger, paths []string, s sink.Sink) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reports, err := collectReports(paths)
	if err != nil {
		return 0, err
	}

	var bar *progressbar.ProgressBar
	if len(reports) > 1 {
		bar = progressbar.NewOptions(len(reports),
			progressbar.OptionSetDescription("importing reports"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount())
	}

	parser := pclint.NewParser(logger, s)

	parsed := 0
	for _, path := range reports {
		select {
		case <-ctx.Done():
			return parsed, ctx.Err()
		default:
		}

		ok, err := processReport(parser, logger, path)
		if bar != nil {
			bar.Add(1)
		}
		if err != nil {
			return parsed, err
		}
		if ok {
			parsed++
		}
	}

	if bar != nil {
		fmt.Println()
	}
	return parsed, nil
}

// processReport parses a single report file. The bool result tells
// whether the report was actually parsed; only sink failures are
// returned as errors.
func processReport(parser *pclint.Parser, logger *zap.Logger, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("cannot open report", zap.String("report", path), zap.Error(err))
		return false, nil
	}
	defer f.Close()

	r, err := pclint.NewStreamReader(f)
	if err != nil {
		if errors.Is(err, pclint.ErrEmptyReport) {
			logger.Info("skipping empty report", zap.String("report", path))
		} else {
			logger.Error("cannot read report", zap.String("report", path), zap.Error(err))
		}
		return false, nil
	}

	logger.Debug("processing report", zap.String("report", path))
	if err := parser.Parse(r); err != nil {
		return false, fmt.Errorf("importing %s: %w", path, err)
	}
	return true, nil
}

func collectReports(paths []string) ([]string, error) {
	var reports []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}

		if !info.IsDir() {
			reports = append(reports, path)
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.EqualFold(filepath.Ext(p), ".xml") {
				reports = append(reports, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}
