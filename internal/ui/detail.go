package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		cmd := m.back()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.pane.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.pane.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.pane.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.pane.viewport.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.pane.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.pane.viewport.GotoBottom()
	}
	return m, nil
}

// startPreview requests the image for a freshly loaded item. Preview
// failures never reach the detail controller.
func (m *Model) startPreview() tea.Cmd {
	item, ok := m.detail.State().Value()
	if !ok || m.previews == nil || strings.TrimSpace(item.Image) == "" {
		return nil
	}
	m.pane.preview = previewState{url: item.Image, loading: true}
	m.pane.refresh(item)
	return previewCmd(m.ctx, m.previews, item.Image)
}

// applyPreview stores a preview result if it still belongs to the visible
// item.
func (m *Model) applyPreview(msg previewMsg) {
	item, ok := m.detail.State().Value()
	if !ok || !m.onDetail() || item.Image != msg.url || m.pane.preview.url != msg.url {
		return
	}
	m.pane.preview.loading = false
	if msg.err != nil {
		m.pane.preview.failed = true
	} else {
		m.pane.preview.thumb = msg.thumb
	}
	m.pane.refresh(item)
}

func (m Model) renderDetailContent() string {
	st := m.detail.State()
	switch {
	case st.IsPending():
		return m.renderPending()
	case st.IsFailed():
		reason, _ := st.Reason()
		return m.renderFailure(reason)
	}
	return m.pane.viewport.View()
}
