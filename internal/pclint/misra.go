package pclint

import (
	"regexp"
	"strings"
)

// Rule nn.nn -or- Rule nn-nn-nn, followed directly by ',' or ']'.
var misraRulePattern = regexp.MustCompile(
	`Rule (\d{1,2}\.\d{1,2}|\d{1,2}-\d{1,2}-\d{1,2})(,|\])`)

// RemapMisraRule maps a MISRA rule citation embedded in the message to
// the stable repository key, since the tool repeats the human-readable
// citation instead of a code. Only unique rules for MISRA C 2004 and
// MISRA C/C++ 2008 exist in the repository under "M<rule>"; MISRA C
// 2012 rules live under "M2012-<rule>".
//
// matched is false when the message names no recognized MISRA family,
// in which case the original rule id must be kept. A matched family
// with no rule number in the message yields an empty key.
func RemapMisraRule(msg string) (key string, matched bool) {
	switch {
	case strings.Contains(msg, "MISRA 2004"),
		strings.Contains(msg, "MISRA 2008"),
		strings.Contains(msg, "MISRA C++ 2008"),
		strings.Contains(msg, "MISRA C++ Rule"):
		return misraKey(msg, ""), true
	case strings.Contains(msg, "MISRA 2012 Rule"):
		return misraKey(msg, "2012-"), true
	}
	return "", false
}

func misraKey(msg, edition string) string {
	m := misraRulePattern.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	return "M" + edition + m[1]
}
