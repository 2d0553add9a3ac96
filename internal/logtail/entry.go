package logtail

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Entry is one line of the console-encoded session log:
//
//	2026-03-20T09:14:02.118+0900	INFO	checklist	checklist/manager.go:97	packing list restored	{"items": 42}
//
// Lines without tabs (stack traces, wrapped output) are continuations of the
// previous entry.
type Entry struct {
	Time         string
	Level        zapcore.Level
	Logger       string
	Caller       string
	Message      string
	Fields       string
	Continuation bool
}

// Parse splits a log line into its columns.
func Parse(line string) Entry {
	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		return Entry{Message: line, Continuation: true}
	}
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(parts[1])))
	if err != nil {
		return Entry{Message: line, Continuation: true}
	}

	e := Entry{Time: parts[0], Level: level}
	rest := parts[2:]
	if last := rest[len(rest)-1]; len(rest) > 1 && strings.HasPrefix(last, "{") {
		e.Fields = last
		rest = rest[:len(rest)-1]
	}
	e.Message = rest[len(rest)-1]
	for _, col := range rest[:len(rest)-1] {
		if strings.Contains(col, ".go:") {
			e.Caller = col
		} else {
			e.Logger = col
		}
	}
	return e
}

// Filter keeps entries at or above minLevel. Continuation lines follow the entry
// they belong to.
func Filter(lines []string, minLevel zapcore.Level) []string {
	out := make([]string, 0, len(lines))
	keep := true
	for _, line := range lines {
		e := Parse(line)
		if !e.Continuation {
			keep = e.Level >= minLevel
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
