package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/turkosaurus/multiverse/internal/rickmorty"
	"github.com/turkosaurus/multiverse/internal/types"
	"github.com/turkosaurus/multiverse/internal/ui/keys"
	"github.com/turkosaurus/multiverse/internal/ui/styles"
)

// detailOverhead is the number of rows used by the header and help bar.
const detailOverhead = 3

const detailErrorMessage = "Error loading character details. Press esc to go back."

// DetailView shows a single character fetched by id.
type DetailView struct {
	id        int
	name      string
	character Fetchable[*types.Character]
	viewport  viewport.Model
	width     int
	style     string // glamour style

	ctx    context.Context
	client rickmorty.Fetcher
	styles styles.Styles
	keys   keys.KeyMap
	logger *slog.Logger
}

func NewDetailView(ctx context.Context, client rickmorty.Fetcher, s styles.Styles, k keys.KeyMap, logger *slog.Logger) DetailView {
	if logger == nil {
		logger = slog.Default()
	}
	return DetailView{
		viewport: viewport.New(80, 20),
		width:    80,
		style:    "dark",
		ctx:      ctx,
		client:   client,
		styles:   s,
		keys:     k,
		logger:   logger,
	}
}

// Open starts loading the character with the given id. name is shown
// while the fetch is in flight.
func (dv *DetailView) Open(id int, name string) tea.Cmd {
	dv.id = id
	dv.name = name
	dv.character.Reset()
	dv.character.SetFetching()
	dv.viewport.SetContent("")
	dv.viewport.GotoTop()
	return loadCharacter(dv.ctx, dv.client, id)
}

// SetCharacter applies a fetch result. Results for a character other than
// the one currently open are ignored.
func (dv *DetailView) SetCharacter(msg characterLoadedMsg) {
	if msg.id != dv.id {
		return
	}
	if msg.err != nil {
		dv.character.SetError(msg.err)
		dv.logger.Error("load character", "id", msg.id, "error", msg.err)
		return
	}
	dv.character.SetData(msg.character)
	dv.refresh()
}

// SetSize resizes the viewport and re-renders the content.
func (dv *DetailView) SetSize(width, height int) {
	dv.width = width
	dv.viewport.Width = width
	dv.viewport.Height = max(1, height-detailOverhead)
	dv.refresh()
}

func (dv *DetailView) refresh() {
	if !dv.character.HasData() || dv.character.Data == nil {
		return
	}
	out, err := RenderCharacter(*dv.character.Data, dv.width-2, dv.style)
	if err != nil {
		dv.logger.Warn("render character", "id", dv.id, "error", err)
		out = CharacterMarkdown(*dv.character.Data)
	}
	dv.viewport.SetContent(out)
}

// Character returns the loaded character, or nil.
func (dv *DetailView) Character() *types.Character {
	if !dv.character.HasData() {
		return nil
	}
	return dv.character.Data
}

// Update handles key events for the detail view.
func (dv DetailView) Update(msg tea.KeyMsg) (DetailView, tea.Cmd) {
	switch {
	case key.Matches(msg, dv.keys.Quit):
		return dv, tea.Quit
	case key.Matches(msg, dv.keys.Back), key.Matches(msg, dv.keys.PrevPage):
		return dv, backToList
	case key.Matches(msg, dv.keys.Up):
		dv.viewport.LineUp(1)
	case key.Matches(msg, dv.keys.Down):
		dv.viewport.LineDown(1)
	case key.Matches(msg, dv.keys.Top):
		dv.viewport.GotoTop()
	case key.Matches(msg, dv.keys.Bottom):
		dv.viewport.GotoBottom()
	}
	return dv, nil
}

func (dv DetailView) View(width int) string {
	title := dv.name
	if c := dv.Character(); c != nil {
		title = c.Name
	}
	header := dv.styles.Title.Render(fmt.Sprintf("#%d %s", dv.id, title))

	var body string
	switch {
	case dv.character.IsFetching():
		body = dv.styles.Dimmed.Render("loading character...")
	case dv.character.Err != nil:
		body = dv.styles.Error.Render(detailErrorMessage)
	default:
		body = dv.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		renderHelp(dv.styles, dv.keys.DetailHelp()),
	)
}
