package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// suppressCore filters entries at the sink by message substring.
type suppressCore struct {
	zapcore.Core
	patterns []string
}

// NewSuppressCore wraps core so that entries whose message contains any of patterns are dropped.
func NewSuppressCore(core zapcore.Core, patterns []string) zapcore.Core {
	return &suppressCore{Core: core, patterns: patterns}
}

func (c *suppressCore) With(fields []zapcore.Field) zapcore.Core {
	return &suppressCore{Core: c.Core.With(fields), patterns: c.patterns}
}

func (c *suppressCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	for _, p := range c.patterns {
		if strings.Contains(ent.Message, p) {
			return ce
		}
	}
	return c.Core.Check(ent, ce)
}
