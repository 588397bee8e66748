package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cxxtools/lintport/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgWhite)
	flowStyle    = color.New(color.FgGreen)
)

// GenerateFormattedIssue formats findings into a human-readable string,
// one block per finding with its flow locations indented beneath it.
func GenerateFormattedIssue(issues []types.ReportIssue) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssueHeader(issue))
		builder.WriteString(messageStyle.Sprintf("  %s\n", issue.Message))
		for _, loc := range issue.Secondary {
			builder.WriteString(flowStyle.Sprintf("  flow: %s:%d %s\n", loc.File, loc.Line, loc.Message))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatIssueHeader creates the header for a finding.
// (e.g. "error: 534\n --> src/foo.c:42")
func formatIssueHeader(issue types.ReportIssue) string {
	header := errorStyle.Sprint("error: ") + ruleStyle.Sprint(issue.RuleID) + "\n"
	header += lineStyle.Sprint(" --> ")
	if issue.Primary != nil {
		header += fileStyle.Sprint(fmt.Sprintf("%s:%d", issue.Primary.File, issue.Primary.Line))
	} else {
		header += fileStyle.Sprint("(project)")
	}
	return header + "\n"
}
