package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxxtools/lintport/internal/types"
)

func issue(rule, file string, line int, msg string) types.ReportIssue {
	i := types.ReportIssue{RuleID: rule, Message: msg}
	if file != "" {
		i.Primary = &types.Location{File: file, Line: line}
	}
	return i
}

func TestCollectorKeepsOrder(t *testing.T) {
	t.Parallel()

	c := &Collector{}
	require.NoError(t, c.Save(issue("530", "a.c", 1, "first")))
	require.NoError(t, c.Save(issue("534", "b.c", 2, "second")))

	require.Len(t, c.Issues, 2)
	assert.Equal(t, "first", c.Issues[0].Message)
	assert.Equal(t, "second", c.Issues[1].Message)
}

func TestDeduperDropsDuplicates(t *testing.T) {
	t.Parallel()

	c := &Collector{}
	d := NewDeduper(c)

	require.NoError(t, d.Save(issue("530", "a.c", 1, "msg")))
	require.NoError(t, d.Save(issue("530", "a.c", 1, "msg")))
	require.NoError(t, d.Save(issue("530", "a.c", 2, "msg")))
	require.NoError(t, d.Save(issue("530", "a.c", 1, "other msg")))
	require.NoError(t, d.Save(issue("534", "a.c", 1, "msg")))
	require.NoError(t, d.Save(issue("900", "", 0, "project")))
	require.NoError(t, d.Save(issue("900", "", 0, "project")))

	assert.Len(t, c.Issues, 5)
}
