package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/route"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	page, ok := m.list.State().Value()
	if !ok || len(page.Items) == 0 {
		return m, nil
	}
	count := len(page.Items)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.selected = max(m.cursor.selected-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.selected = min(m.cursor.selected+1, count-1)
	case key.Matches(msg, m.keys.Top):
		m.cursor.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor.selected = count - 1
	case key.Matches(msg, m.keys.PageUp):
		m.cursor.selected = max(m.cursor.selected-m.listRows(), 0)
	case key.Matches(msg, m.keys.PageDown):
		m.cursor.selected = min(m.cursor.selected+m.listRows(), count-1)
	case key.Matches(msg, m.keys.Open):
		cmd := m.open(route.Detail(page.Items[m.cursor.selected].ID))
		return m, cmd
	default:
		return m, nil
	}
	m.cursor.clamp()
	return m, nil
}

func (m Model) listRows() int {
	return max(m.bodyHeight()-2, 1)
}

func (m Model) renderListContent(rows int) string {
	st := m.list.State()
	switch {
	case st.IsPending():
		return m.renderPending()
	case st.IsFailed():
		reason, _ := st.Reason()
		return m.renderFailure(reason)
	}

	page, _ := st.Value()
	if len(page.Items) == 0 {
		styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
		return styles.MutedText.Render(m.loc.T(locale.MsgEmptyList, nil))
	}

	width := max(m.width-2, 0)
	end := min(m.cursor.offset+rows, len(page.Items))
	lines := make([]string, 0, end-m.cursor.offset)
	for i := m.cursor.offset; i < end; i++ {
		lines = append(lines, m.formatListRow(page.Items[i], width, i == m.cursor.selected))
	}
	return strings.Join(lines, "\n")
}

// formatListRow renders "#ID Name · Status · Species".
func (m Model) formatListRow(item catalog.Item, width int, selected bool) string {
	bgColor := m.theme.FocusBg
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	var idStyle, nameStyle, sepStyle, statusStyle, speciesStyle lipgloss.Style
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, nameStyle, sepStyle, statusStyle, speciesStyle = sel, sel.Bold(true), sel, sel, sel
	} else {
		styles := m.theme.Styles()
		idStyle = styles.FaintText
		nameStyle = styles.Text
		sepStyle = styles.FaintText
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(item.Status)))
		speciesStyle = styles.MutedText
	}

	idStr := fmt.Sprintf("#%-4d", item.ID)
	status := "● " + m.loc.Status(item.Status)
	suffixWidth := lipgloss.Width(status) + lipgloss.Width(item.Species) + 6
	nameWidth := max(width-lipgloss.Width(idStr)-suffixWidth-2, 8)

	row := bg.Render(idStr, idStyle) + bg.Space() +
		bg.Render(truncate(item.Name, nameWidth), nameStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(status, statusStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(item.Species, speciesStyle)
	return bg.FillLine(row, width)
}
