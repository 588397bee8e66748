package pclint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapMisraRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     string
		key     string
		matched bool
	}{
		{
			name:    "MISRA 2004 dotted rule",
			msg:     "Violates MISRA 2004 Rule 8.10], static storage",
			key:     "M8.10",
			matched: true,
		},
		{
			name:    "MISRA 2008 dotted rule",
			msg:     "Violates MISRA 2008 Rule 5.14, side effects",
			key:     "M5.14",
			matched: true,
		},
		{
			name:    "MISRA C++ 2008 dashed rule",
			msg:     "Violates MISRA C++ 2008 Rule 5-0-1], order of evaluation",
			key:     "M5-0-1",
			matched: true,
		},
		{
			name:    "MISRA C++ Rule family",
			msg:     "Violates MISRA C++ Rule 10.2, hiding",
			key:     "M10.2",
			matched: true,
		},
		{
			name:    "MISRA 2012 dashed rule",
			msg:     "Violates MISRA 2012 Rule 1-2-3, language extensions",
			key:     "M2012-1-2-3",
			matched: true,
		},
		{
			name:    "family without rule number",
			msg:     "Violates MISRA 2004 Required Directive",
			key:     "",
			matched: true,
		},
		{
			name:    "rule number without terminator",
			msg:     "Violates MISRA 2004 Rule 8.10 unterminated",
			key:     "",
			matched: true,
		},
		{
			name:    "MISRA without a family",
			msg:     "Some MISRA related remark",
			key:     "",
			matched: false,
		},
		{
			name:    "unrelated message",
			msg:     "Symbol not initialized",
			key:     "",
			matched: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, matched := RemapMisraRule(tt.msg)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.matched, matched)
		})
	}
}
