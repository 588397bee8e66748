// Package pclint imports PC-lint XML reports.
//
// A report is a flat sequence of <issue> elements. Most elements are
// primary findings; elements tagged type="supplemental" are follow-up
// messages that belong to the finding right before them. The parser
// makes a single pass over the stream, keeps at most one finding open
// at a time, merges supplemental messages into it as secondary
// locations, and forwards each finding to the sink exactly once when
// the next primary finding opens or the stream ends.
package pclint

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cxxtools/lintport/internal/sink"
	"github.com/cxxtools/lintport/internal/types"
)

const supplementalWalkPrefix = "during specific walk"

// Some supplemental messages nest the true location inside the message
// text instead of the file/line attributes, eg.
// "during specific walk src/foo.c:12:3 variable may be null".
var supplementalMsgPattern = regexp.MustCompile(
	`^` + supplementalWalkPrefix + `\s+(.+):(\d+):(\d+)\s+.+$`)

// Parser turns one PC-lint report stream into a sequence of normalized
// findings pushed to the sink.
type Parser struct {
	logger *zap.Logger
	sink   sink.Sink
}

func NewParser(logger *zap.Logger, s sink.Sink) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger, sink: s}
}

// Parse reads <issue> elements until the stream ends and forwards each
// closed finding to the sink in source order. A malformed stream stops
// the read loop; findings already forwarded are kept and no error is
// returned for the corruption. Only sink failures are returned.
func (p *Parser) Parse(r ElementReader) error {
	var current *types.ReportIssue

	for {
		attrs, err := r.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Error("ignoring malformed report remainder", zap.Error(err))
			}
			break
		}

		next, err := p.consume(current, attrs)
		if err != nil {
			return err
		}
		current = next
	}

	if current != nil {
		return p.sink.Save(*current)
	}
	return nil
}

// consume feeds one element into the state machine and returns the
// finding left open afterwards.
func (p *Parser) consume(current *types.ReportIssue, attrs types.RawAttributes) (*types.ReportIssue, error) {
	// Supplemental messages attach to the preceding finding. One with
	// no open parent is dropped.
	if attrs.Supplemental() {
		if current != nil {
			p.mergeSupplemental(current, attrs)
		}
		return current, nil
	}

	opened, ok := p.validate(attrs)
	if !ok {
		p.logger.Warn("PC-lint finding ignored", zap.String("msg", attrs.Desc))
		p.logger.Debug("invalid finding",
			zap.String("file", attrs.File),
			zap.String("line", attrs.Line),
			zap.String("id", attrs.Number),
			zap.String("msg", attrs.Desc))
		return current, nil
	}

	if strings.Contains(opened.Message, "MISRA") {
		if key, matched := RemapMisraRule(opened.Message); matched {
			p.logger.Debug("remapped MISRA rule",
				zap.String("from", opened.RuleID), zap.String("to", key))
			opened.RuleID = key
		}
	}

	// Opening a new primary finding closes the previous one.
	if current != nil {
		if err := p.sink.Save(*current); err != nil {
			return nil, err
		}
	}
	return opened, nil
}

// validate applies the record validity rules and builds the finding.
// A record needs a rule id and a message; a record with a file needs
// an integer line, and a record without a file is a project-level
// finding and must not carry a non-zero line.
func (p *Parser) validate(a types.RawAttributes) (*types.ReportIssue, bool) {
	if a.Number == "" || a.Desc == "" {
		return nil, false
	}

	issue := &types.ReportIssue{RuleID: a.Number, Message: a.Desc}

	if a.File != "" {
		line, err := strconv.Atoi(a.Line)
		if err != nil {
			p.logger.Error("ignoring finding with unparseable line",
				zap.String("line", a.Line), zap.Error(err))
			return nil, false
		}
		issue.Primary = &types.Location{File: a.File, Line: line}
		return issue, true
	}

	if a.Line != "" {
		line, err := strconv.Atoi(a.Line)
		if err != nil {
			p.logger.Error("ignoring finding with unparseable line",
				zap.String("line", a.Line), zap.Error(err))
			return nil, false
		}
		if line != 0 {
			return nil, false
		}
	}
	return issue, true
}

// mergeSupplemental attaches a follow-up location to the open finding.
// It never opens or closes a finding.
func (p *Parser) mergeSupplemental(current *types.ReportIssue, a types.RawAttributes) {
	if current.Primary == nil {
		p.logger.Error("finding has no primary location, skip supplemental message",
			zap.String("issue", current.String()))
		return
	}

	file := a.File
	rawLine := a.Line
	msg := a.Desc

	if file == "" {
		if m := supplementalMsgPattern.FindStringSubmatch(msg); m != nil {
			file = m[1]
			rawLine = m[2]
		}
	}
	if file == "" || rawLine == "" {
		return
	}

	line, err := strconv.Atoi(rawLine)
	if err != nil {
		p.logger.Error("ignoring supplemental message with unparseable line",
			zap.String("line", rawLine), zap.Error(err))
		return
	}

	// The sink does not support flow locations in a different file.
	// Rewrite cross-file flows onto the primary location and keep the
	// true location in the message text.
	if current.Primary.File != file {
		if !strings.HasPrefix(msg, supplementalWalkPrefix) {
			msg = fmt.Sprintf("%s %s:%d %s", supplementalWalkPrefix, file, line, msg)
		}
		file = current.Primary.File
		line = current.Primary.Line
	}

	current.AddSecondary(file, line, msg)
}
