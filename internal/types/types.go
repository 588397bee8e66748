package types

import (
	"fmt"
	"strings"
)

// Location points at a place in the analyzed code base. Line 0 means a
// file-level finding. For secondary locations Message carries the
// supplemental text that came with the flow element.
type Location struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message,omitempty"`
}

// ReportIssue is one normalized finding imported from a PC-lint report.
// Primary is nil for project-level findings. Secondary holds the
// supplemental "flow" locations in arrival order; they are only ever
// appended while the issue is the parser's current open issue.
type ReportIssue struct {
	RuleID    string     `json:"ruleId"`
	Message   string     `json:"message"`
	Primary   *Location  `json:"primary,omitempty"`
	Secondary []Location `json:"secondary,omitempty"`
}

// AddSecondary appends a flow location to the issue.
func (i *ReportIssue) AddSecondary(file string, line int, msg string) {
	i.Secondary = append(i.Secondary, Location{File: file, Line: line, Message: msg})
}

// Key identifies the issue for within-run deduplication.
func (i *ReportIssue) Key() string {
	var b strings.Builder
	b.WriteString(i.RuleID)
	b.WriteByte('|')
	if i.Primary != nil {
		fmt.Fprintf(&b, "%s:%d", i.Primary.File, i.Primary.Line)
	}
	b.WriteByte('|')
	b.WriteString(i.Message)
	return b.String()
}

func (i *ReportIssue) String() string {
	if i.Primary == nil {
		return fmt.Sprintf("[%s] %s", i.RuleID, i.Message)
	}
	return fmt.Sprintf("[%s] %s:%d %s", i.RuleID, i.Primary.File, i.Primary.Line, i.Message)
}

// RawAttributes are the attribute values read off a single <issue>
// element, before any validation. All fields may be empty.
type RawAttributes struct {
	File   string
	Line   string
	Number string
	Desc   string
	Type   string
}

// Supplemental reports whether the element is a follow-up message for
// the preceding primary finding rather than a finding of its own.
func (a RawAttributes) Supplemental() bool {
	return a.Type == "supplemental"
}
