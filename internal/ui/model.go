package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/prefs"
	"github.com/five82/morty/internal/preview"
	"github.com/five82/morty/internal/route"
	"github.com/five82/morty/internal/state"
)

// PreviewLoader renders image previews. *preview.Loader implements it.
type PreviewLoader interface {
	Load(ctx context.Context, url string) (preview.Thumbnail, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Service   catalog.Service
	Previews  PreviewLoader // nil disables previews
	Localizer *locale.Localizer
	Logger    log.FieldLogger
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving preference changes
	LogFile   string
	// StartPath opens the UI on a route other than the listing, e.g.
	// "character_detail/1". The listing stays underneath for back.
	StartPath string
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx       context.Context
	service   catalog.Service
	previews  PreviewLoader
	loc       *locale.Localizer
	logger    log.FieldLogger
	prefsPath string

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	theme   Theme

	width  int
	height int
	ready  bool

	nav    *route.Stack
	list   *state.Controller[int, catalog.ItemPage]
	detail *state.Controller[int, catalog.Item]

	cursor *listCursor
	pane   *detailPane

	showHelp bool
	logs     logDrawer
}

// New builds the model. Fetching starts in Init.
func New(opts Options) (Model, error) {
	if opts.Service == nil {
		return Model{}, errors.New("ui: service is required")
	}
	loc := opts.Localizer
	if loc == nil {
		var err error
		if loc, err = locale.New(""); err != nil {
			return Model{}, fmt.Errorf("ui: %w", err)
		}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	var logger log.FieldLogger = log.StandardLogger()
	if opts.Logger != nil {
		logger = opts.Logger
	}

	describe := NewDescriber(loc)
	m := Model{
		ctx:       ctx,
		service:   opts.Service,
		previews:  opts.Previews,
		loc:       loc,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(loc),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		nav:       route.NewStack(route.List()),
		list: state.NewController[int, catalog.ItemPage](opts.Service.ListItems,
			state.WithName("list"),
			state.WithDescriber(describe),
			state.WithLogger(logger)),
		detail: state.NewController[int, catalog.Item](opts.Service.GetItemByID,
			state.WithName("detail"),
			state.WithDescriber(describe),
			state.WithLogger(logger)),
		cursor: &listCursor{},
		pane:   &detailPane{viewport: viewport.New(0, 0), loc: loc},
		logs:   logDrawer{open: opts.Prefs.ShowLogs, path: opts.LogFile, viewport: viewport.New(0, 0)},
	}
	m.list.Subscribe(m.cursor.onState)
	m.detail.Subscribe(m.pane.onState)
	m.applyTheme(GetTheme(opts.Prefs.Theme))
	m.cursor.rows = m.listRows()

	if opts.StartPath != "" {
		r, err := route.Match(opts.StartPath)
		if err != nil {
			return Model{}, fmt.Errorf("ui: start path: %w", err)
		}
		if r.Screen != route.ScreenList {
			m.nav.Push(r)
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.activateCurrent()}
	if m.logs.open {
		cmds = append(cmds, m.logs.refreshCmds())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.currentPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listResultMsg:
		m.list.Resolve(msg.result)
		return m, nil

	case detailResultMsg:
		if !m.detail.Resolve(msg.result) {
			return m, nil
		}
		return m, m.startPreview()

	case previewMsg:
		m.applyPreview(msg)
		return m, nil

	case logTailMsg:
		m.logs.apply(msg, m.theme)
		return m, nil

	case logTickMsg:
		if !m.logs.open || msg.gen != m.logs.gen {
			return m, nil
		}
		return m, m.logs.refreshCmds()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.loc.T(locale.MsgLoading, nil)
	}
	if m.showHelp {
		return m.renderHelp()
	}

	body := m.renderBody(m.bodyHeight())
	parts := []string{m.renderHeader(), body}
	if m.logs.open {
		parts = append(parts, m.renderLogDrawer())
	}
	parts = append(parts, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLogs):
		cmd := m.logs.toggle()
		m.savePrefs()
		m.layout()
		return m, cmd
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}

	if m.onDetail() {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.list.Deactivate()
	m.detail.Deactivate()
	return m, tea.Quit
}

func (m *Model) onDetail() bool {
	return m.nav.Peek().Route.Screen == route.ScreenDetail
}

func (m *Model) currentPending() bool {
	if m.onDetail() {
		return m.detail.State().IsPending()
	}
	return m.list.State().IsPending()
}

// activateCurrent starts the controller for the visible route. A detail
// route whose parameter does not decode fails without fetching.
func (m *Model) activateCurrent() tea.Cmd {
	r := m.nav.Peek().Route
	if r.Screen == route.ScreenDetail {
		m.pane.preview = previewState{}
		id, err := r.ItemID()
		if err != nil {
			m.detail.Fail(err)
			return nil
		}
		fetch, ok := m.detail.Activate(m.ctx, id)
		if !ok {
			return nil
		}
		return tea.Batch(detailFetchCmd(fetch), m.spinner.Tick)
	}

	fetch, ok := m.list.Activate(m.ctx, catalog.FirstPage)
	if !ok {
		return nil
	}
	return tea.Batch(listFetchCmd(fetch), m.spinner.Tick)
}

func (m *Model) reload() tea.Cmd {
	if m.onDetail() {
		m.pane.preview = previewState{}
		fetch, ok := m.detail.Reload(m.ctx)
		if !ok {
			return nil
		}
		return tea.Batch(detailFetchCmd(fetch), m.spinner.Tick)
	}
	fetch, ok := m.list.Reload(m.ctx)
	if !ok {
		return nil
	}
	return tea.Batch(listFetchCmd(fetch), m.spinner.Tick)
}

// open navigates forward to r, remembering the selected item so the list
// can restore it on return.
func (m *Model) open(r route.Route) tea.Cmd {
	if page, ok := m.list.State().Value(); ok && m.cursor.selected < len(page.Items) {
		m.nav.SetResume(page.Items[m.cursor.selected].ID)
	}
	m.list.Deactivate()
	m.nav.Push(r)
	m.pane.viewport.GotoTop()
	return m.activateCurrent()
}

// back leaves the detail screen. The list fetches again on return.
func (m *Model) back() tea.Cmd {
	entry, ok := m.nav.Pop()
	if !ok {
		return nil
	}
	m.detail.Deactivate()
	m.pane.preview = previewState{}
	if id, ok := entry.Resume.(int); ok {
		m.cursor.restoreID = id
	}
	return m.activateCurrent()
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.pane.theme = t
	m.pane.onState(m.detail.State())
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	m.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	m.help.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowLogs: m.logs.open}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.WithField("path", m.prefsPath).Warnf("save prefs: %v", err)
	}
}

const (
	headerHeight = 1
	footerHeight = 1
)

// layout resizes components after the window or drawer changes.
func (m *Model) layout() {
	m.help.Width = m.width
	m.logs.resize(m.width-2, logDrawerHeight-2)
	m.pane.viewport.Width = max(m.width-4, 0)
	m.pane.viewport.Height = max(m.bodyHeight()-2, 0)
	m.pane.onState(m.detail.State())
	m.cursor.rows = m.listRows()
	m.cursor.clamp()
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if m.logs.open {
		h -= logDrawerHeight
	}
	return max(h, 3)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	title := m.loc.T(locale.MsgListTitle, nil)
	if m.onDetail() {
		title = m.loc.T(locale.MsgDetailTitle, nil)
		if item, ok := m.detail.State().Value(); ok {
			title += " · " + item.Name
		}
	}
	left := bg.Render("morty", styles.Brand) + bg.Render("  "+title, styles.Text)

	var right string
	if page, ok := m.list.State().Value(); ok && !m.onDetail() {
		right = bg.Render(m.loc.T(locale.MsgPageSummary, map[string]any{
			"Page":  page.Page,
			"Pages": page.TotalPages,
			"Count": page.TotalCount,
		}), styles.MutedText)
	}
	right += bg.Render("  T:", styles.AccentText) + bg.Render(m.theme.Name, styles.FaintText)

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + bg.Spaces(gap) + right
	return styles.Header.Width(m.width).Render(truncate(line, max(m.width-2, 0)))
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderBody(height int) string {
	if m.onDetail() {
		title := m.loc.T(locale.MsgDetailTitle, nil)
		if p := m.nav.Peek().Route.Param; p != "" {
			title += " #" + p
		}
		return m.renderTitledBox(title, m.renderDetailContent(), m.width, height, true)
	}
	return m.renderTitledBox(m.loc.T(locale.MsgListTitle, nil), m.renderListContent(height-2), m.width, height, true)
}

// renderPending is shown in place of content while a fetch is in flight.
func (m Model) renderPending() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	return bg.Render(m.spinner.View(), lipgloss.NewStyle()) + bg.Space() + bg.Render(m.loc.T(locale.MsgLoading, nil), styles.MutedText)
}

// renderFailure is shown in place of content after a failed fetch.
func (m Model) renderFailure(reason string) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	return NewBgStyle(m.theme.FocusBg).Render(reason, styles.DangerText)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	ctx := m.ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.list.Deactivate()
		fm.detail.Deactivate()
	}
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
