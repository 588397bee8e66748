// Package sink receives the findings produced by the report parser.
package sink

import "github.com/cxxtools/lintport/internal/types"

// Sink receives validated findings one at a time, in source order.
// The parser calls Save exactly once per closed finding.
type Sink interface {
	Save(issue types.ReportIssue) error
}

// Collector accumulates findings in memory.
type Collector struct {
	Issues []types.ReportIssue
}

func (c *Collector) Save(issue types.ReportIssue) error {
	c.Issues = append(c.Issues, issue)
	return nil
}

// Deduper drops findings identical to one already saved in this run
// (same rule id, primary location and message). Findings from
// different runs are never compared.
type Deduper struct {
	next Sink
	seen map[string]struct{}
}

func NewDeduper(next Sink) *Deduper {
	return &Deduper{next: next, seen: make(map[string]struct{})}
}

func (d *Deduper) Save(issue types.ReportIssue) error {
	key := issue.Key()
	if _, dup := d.seen[key]; dup {
		return nil
	}
	d.seen[key] = struct{}{}
	return d.next.Save(issue)
}
