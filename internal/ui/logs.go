package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/logging"
)

const (
	logDrawerHeight    = 10
	logTailLines       = 200
	logRefreshInterval = 2 * time.Second
)

// logDrawer shows the tail of the log file under the main screen.
type logDrawer struct {
	open     bool
	path     string
	gen      int
	lines    []string
	err      error
	viewport viewport.Model
}

// toggle opens or closes the drawer. Opening starts a refresh loop tagged
// with a new generation so an older loop stops on its next tick.
func (d *logDrawer) toggle() tea.Cmd {
	d.open = !d.open
	d.gen++
	if !d.open {
		return nil
	}
	return d.refreshCmds()
}

func (d *logDrawer) refreshCmds() tea.Cmd {
	return tea.Batch(tailLogsCmd(d.path, d.gen), logTickCmd(d.gen))
}

func (d *logDrawer) resize(width, height int) {
	d.viewport.Width = max(width, 0)
	d.viewport.Height = max(height, 0)
}

func (d *logDrawer) apply(msg logTailMsg, theme Theme) {
	if msg.gen != d.gen {
		return
	}
	d.lines = msg.lines
	d.err = msg.err
	d.viewport.SetContent(colorizeLogLines(d.lines, theme))
	d.viewport.GotoBottom()
}

func colorizeLogLines(lines []string, theme Theme) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = levelStyle(logging.LineLevel(line), styles).Render(line)
	}
	return strings.Join(out, "\n")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "warning", "warn":
		return styles.WarningText
	case "error", "fatal", "panic":
		return styles.DangerText
	case "debug", "trace":
		return styles.FaintText
	default:
		return styles.Text
	}
}

func (m Model) renderLogDrawer() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	var content string
	switch {
	case m.logs.err != nil:
		content = styles.DangerText.Render(m.logs.err.Error())
	case len(m.logs.lines) == 0:
		content = styles.FaintText.Render(m.loc.T(locale.MsgLogsEmpty, nil))
	default:
		content = m.logs.viewport.View()
	}
	title := m.loc.T(locale.MsgLogsTitle, nil)
	if m.logs.path != "" {
		title += " · " + m.logs.path
	}
	return m.renderTitledBox(title, content, m.width, logDrawerHeight, false)
}
