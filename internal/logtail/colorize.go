package logtail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"
)

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	loggerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	callerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fieldsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AFFF"))

	levelStyles = map[zapcore.Level]lipgloss.Style{
		zapcore.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		zapcore.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		zapcore.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		zapcore.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// ColorizeLine renders one log line for a terminal. Columns are joined with
// single spaces and the caller column is dropped unless withCaller is set.
func ColorizeLine(line string, withCaller bool) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	e := Parse(line)
	if e.Continuation {
		return detailStyle.Render(line)
	}

	cols := []string{timeStyle.Render(e.Time), levelStyle(e.Level).Render(e.Level.CapitalString())}
	if e.Logger != "" {
		cols = append(cols, loggerStyle.Render("["+e.Logger+"]"))
	}
	if withCaller && e.Caller != "" {
		cols = append(cols, callerStyle.Render(e.Caller))
	}
	cols = append(cols, e.Message)
	if e.Fields != "" {
		cols = append(cols, fieldsStyle.Render(e.Fields))
	}
	return strings.Join(cols, " ")
}

// ColorizeLines applies ColorizeLine to every line.
func ColorizeLines(lines []string, withCaller bool) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ColorizeLine(l, withCaller)
	}
	return out
}

func levelStyle(l zapcore.Level) lipgloss.Style {
	if s, ok := levelStyles[l]; ok {
		return s
	}
	return levelStyles[zapcore.ErrorLevel]
}
