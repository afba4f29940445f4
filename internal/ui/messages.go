package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/logging"
	"github.com/five82/morty/internal/preview"
	"github.com/five82/morty/internal/state"
)

// Messages

type listResultMsg struct {
	result state.Result[int, catalog.ItemPage]
}

type detailResultMsg struct {
	result state.Result[int, catalog.Item]
}

type previewMsg struct {
	url   string
	thumb preview.Thumbnail
	err   error
}

type logTailMsg struct {
	gen   int
	lines []string
	err   error
}

type logTickMsg struct {
	gen int
}

// Commands

func listFetchCmd(fetch state.Fetch[int, catalog.ItemPage]) tea.Cmd {
	return func() tea.Msg {
		return listResultMsg{result: fetch()}
	}
}

func detailFetchCmd(fetch state.Fetch[int, catalog.Item]) tea.Cmd {
	return func() tea.Msg {
		return detailResultMsg{result: fetch()}
	}
}

func previewCmd(ctx context.Context, loader PreviewLoader, url string) tea.Cmd {
	return func() tea.Msg {
		thumb, err := loader.Load(ctx, url)
		return previewMsg{url: url, thumb: thumb, err: err}
	}
}

func tailLogsCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logTailMsg{gen: gen}
		}
		lines, err := logging.Tail(path, logTailLines)
		return logTailMsg{gen: gen, lines: lines, err: err}
	}
}

func logTickCmd(gen int) tea.Cmd {
	return tea.Tick(logRefreshInterval, func(time.Time) tea.Msg {
		return logTickMsg{gen: gen}
	})
}
