package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/multiverse/internal/rickmorty"
)

func mount() tea.Msg {
	return mountMsg{}
}

func loadPage(ctx context.Context, client rickmorty.Fetcher, seq, page int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.FetchPage(ctx, page)
		if err != nil {
			return charactersLoadedMsg{seq: seq, page: page, err: err}
		}
		return charactersLoadedMsg{seq: seq, page: page, resp: resp}
	}
}

func loadCharacter(ctx context.Context, client rickmorty.Fetcher, id int) tea.Cmd {
	return func() tea.Msg {
		c, err := client.FetchByID(ctx, id)
		if err != nil {
			return characterLoadedMsg{id: id, err: err}
		}
		return characterLoadedMsg{id: id, character: c}
	}
}

func backToList() tea.Msg {
	return backToListMsg{}
}

// clearMsg clears the status line after d unless a newer announcement
// arrives first. A zero duration keeps the message.
func clearMsg(count int, d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMsgMsg{count: count}
	})
}
