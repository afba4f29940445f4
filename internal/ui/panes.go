package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/preview"
	"github.com/five82/morty/internal/state"
)

// Screen view state lives behind pointers so every copy of Model sees the
// updates the controller subscriptions make.

// listCursor is the list screen selection.
type listCursor struct {
	selected  int
	offset    int
	restoreID int
	rows      int
}

// onState follows the list controller. A Ready page re-selects the item
// that was open before returning, or keeps the cursor in range.
func (c *listCursor) onState(st state.State[catalog.ItemPage]) {
	page, ok := st.Value()
	if !ok {
		return
	}
	if c.restoreID > 0 {
		for i, item := range page.Items {
			if item.ID == c.restoreID {
				c.selected = i
				break
			}
		}
		c.restoreID = 0
	}
	if c.selected >= len(page.Items) {
		c.selected = max(len(page.Items)-1, 0)
	}
	c.clamp()
}

func (c *listCursor) clamp() {
	rows := max(c.rows, 1)
	if c.selected < c.offset {
		c.offset = c.selected
	}
	if c.selected >= c.offset+rows {
		c.offset = c.selected - rows + 1
	}
	c.offset = max(c.offset, 0)
}

type previewState struct {
	url     string
	thumb   preview.Thumbnail
	loading bool
	failed  bool
}

// detailPane renders the loaded item into a scrollable viewport.
type detailPane struct {
	viewport viewport.Model
	preview  previewState
	theme    Theme
	loc      *locale.Localizer
}

// onState follows the detail controller.
func (d *detailPane) onState(st state.State[catalog.Item]) {
	item, ok := st.Value()
	if !ok {
		d.viewport.SetContent("")
		return
	}
	d.refresh(item)
}

func (d *detailPane) refresh(item catalog.Item) {
	d.viewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(d.theme.FocusBg))
	d.viewport.SetContent(d.render(item, d.viewport.Width))
}

func (d *detailPane) render(item catalog.Item, width int) string {
	styles := d.theme.Styles().WithBackground(d.theme.FocusBg)
	bg := NewBgStyle(d.theme.FocusBg)

	type field struct {
		label string
		value string
		style lipgloss.Style
	}
	typ := item.Type
	if strings.TrimSpace(typ) == "" {
		typ = "—"
	}
	fields := []field{
		{d.loc.T(locale.MsgFieldName, nil), item.Name, styles.Text.Bold(true)},
		{d.loc.T(locale.MsgFieldStatus, nil), "● " + d.loc.Status(item.Status),
			lipgloss.NewStyle().Foreground(lipgloss.Color(d.theme.StatusColor(item.Status)))},
		{d.loc.T(locale.MsgFieldSpecies, nil), item.Species, styles.Text},
		{d.loc.T(locale.MsgFieldType, nil), typ, styles.Text},
		{d.loc.T(locale.MsgFieldGender, nil), d.loc.Gender(item.Gender), styles.Text},
		{d.loc.T(locale.MsgFieldID, nil), strconv.Itoa(item.ID), styles.MutedText},
	}
	showURI := d.preview.thumb.URL == "" || d.preview.failed
	if showURI {
		fields = append(fields, field{d.loc.T(locale.MsgFieldImage, nil), item.Image, styles.InfoText})
	}

	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		pad := labelWidth - lipgloss.Width(f.label) + 2
		lines = append(lines, bg.Render(f.label, styles.MutedText)+bg.Spaces(pad)+bg.Render(f.value, f.style))
	}
	if d.preview.loading {
		lines = append(lines, "", bg.Render(d.loc.T(locale.MsgPreviewLoading, nil), styles.FaintText))
	}
	info := strings.Join(lines, "\n")

	thumb := d.preview.thumb.String()
	if thumb == "" || d.preview.failed {
		return info
	}
	if width > 0 && lipgloss.Width(info)+lipgloss.Width(thumb)+4 > width {
		return thumb + "\n\n" + info
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, thumb, bg.Spaces(4), info)
}
