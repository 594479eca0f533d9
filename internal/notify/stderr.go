package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StderrSink renders diagnostics for the terminal. Warnings stand out so a
// command printed to stdout can still be piped cleanly.
type StderrSink struct {
	out       io.Writer
	warnStyle lipgloss.Style
	infoStyle lipgloss.Style
}

func NewStderrSink(out io.Writer) *StderrSink {
	return &StderrSink{
		out:       out,
		warnStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		infoStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s *StderrSink) Notify(level Level, message string) {
	if s == nil || s.out == nil {
		return
	}
	switch level {
	case LevelWarn:
		fmt.Fprintln(s.out, s.warnStyle.Render("warning:"), message)
	default:
		fmt.Fprintln(s.out, s.infoStyle.Render(message))
	}
}
