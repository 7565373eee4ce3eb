package optimize

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/descent/matrix"
)

// LogLevel controls how much progress output a run produces.
type LogLevel int

const (
	// LogNoop no output is generated (level < 0)
	LogNoop LogLevel = -1
	// LogSummary print the run banner and the final counters, point and value
	LogSummary LogLevel = 0
	// LogIter print also one line per accepted step
	LogIter LogLevel = 1
	// LogTrace print also every line search with its trial count and step
	LogTrace LogLevel = 2
)

// Logger writes progress lines to Msg. A nil *Logger, or one with a nil
// writer, produces no output. Msg must be safe for concurrent use when
// shared between runs.
type Logger struct {
	Level LogLevel
	Msg   io.Writer
}

// NewLogger returns a Logger writing messages up to level into w.
func NewLogger(level LogLevel, w io.Writer) *Logger {
	return &Logger{Level: level, Msg: w}
}

func (l *Logger) enable(level LogLevel) bool {
	return l != nil && l.Msg != nil && l.Level >= level
}

func (l *Logger) log(format string, a ...any) {
	if len(a) > 0 {
		_, _ = fmt.Fprintf(l.Msg, format, a...)
	} else {
		_, _ = fmt.Fprint(l.Msg, format)
	}
}

// ParseLogLevel maps a level name (noop, summary, iter, trace) to its LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "noop", "none", "off":
		return LogNoop, nil
	case "", "summary":
		return LogSummary, nil
	case "iter":
		return LogIter, nil
	case "trace":
		return LogTrace, nil
	}

	return LogNoop, fmt.Errorf("%w: unknown log level %q", ErrBadSettings, name)
}

// String returns the name accepted by ParseLogLevel.
func (l LogLevel) String() string {
	switch {
	case l < LogSummary:
		return "noop"
	case l == LogSummary:
		return "summary"
	case l == LogIter:
		return "iter"
	default:
		return "trace"
	}
}

// formatPoint renders a column vector as "(x1, x2, ...)".
func formatPoint(x *matrix.Dense) string {
	vals := x.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
