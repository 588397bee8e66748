package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/cxxtools/lintport/internal/types"
)

func TestGenerateFormattedIssue(t *testing.T) {
	color.NoColor = true

	issues := []types.ReportIssue{
		{
			RuleID:  "530",
			Message: "Symbol not initialized",
			Primary: &types.Location{File: "src/a.c", Line: 10},
			Secondary: []types.Location{
				{File: "src/a.c", Line: 12, Message: "walking here"},
			},
		},
		{
			RuleID:  "900",
			Message: "project level note",
		},
	}

	out := GenerateFormattedIssue(issues)

	assert.Contains(t, out, "error: 530")
	assert.Contains(t, out, " --> src/a.c:10")
	assert.Contains(t, out, "  Symbol not initialized")
	assert.Contains(t, out, "  flow: src/a.c:12 walking here")
	assert.Contains(t, out, "error: 900")
	assert.Contains(t, out, " --> (project)")
}

func TestGenerateFormattedIssueEmpty(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "", GenerateFormattedIssue(nil))
}
