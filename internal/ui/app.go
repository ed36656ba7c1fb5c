package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/multiverse/internal/config"
	"github.com/turkosaurus/multiverse/internal/rickmorty"
	"github.com/turkosaurus/multiverse/internal/ui/keys"
	"github.com/turkosaurus/multiverse/internal/ui/styles"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

// override at build time
//
//	go build -ldflags "-X 'github.com/turkosaurus/multiverse/internal/ui.Version=1.2.3'"
var Version string = "dev"

// AppLoadedMessage is announced once when the program starts.
const AppLoadedMessage = "Rick and Morty Character Explorer loaded"

// maxDots is the largest page count rendered as paginator dots.
const maxDots = 10

// App is the top-level tea.Model.
type App struct {
	config *config.Config
	styles styles.Styles
	keys   keys.KeyMap
	logger *slog.Logger

	screen   screen
	list     CharacterList
	detail   DetailView
	jump     PageJump
	live     *LiveRegion
	cursor   int
	showHelp bool

	spinner   spinner.Model
	spinning  bool
	paginator paginator.Model

	width, height int
	announced     int // live region count the last clear was scheduled for
}

func NewApp(ctx context.Context, cfg *config.Config, client rickmorty.Fetcher, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}
	s := styles.DefaultStyles()
	k := keys.DefaultKeyMap()
	live := NewLiveRegion(logger)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	p := paginator.New()
	p.ActiveDot = s.Pagination.Render("•")
	p.InactiveDot = s.Dimmed.Render("◦")
	p.KeyMap = paginator.KeyMap{}

	return App{
		config:    cfg,
		styles:    s,
		keys:      k,
		logger:    logger,
		live:      live,
		list:      NewCharacterList(ctx, client, live, logger),
		detail:    NewDetailView(ctx, client, s, k, logger),
		jump:      NewPageJump(),
		spinner:   sp,
		paginator: p,
	}
}

func (a App) Init() tea.Cmd {
	return mount
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.detail.SetSize(msg.Width, msg.Height)

	case mountMsg:
		announce(a.live, a.logger, AppLoadedMessage)
		cmds = append(cmds, a.load(a.list.LoadCharacters(a.config.StartPage)))

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case a.screen == screenList && a.jump.Active():
			var result *PageJumpResult
			a.jump, cmd, result = a.jump.Update(msg)
			if result != nil {
				cmd = a.load(a.list.LoadCharacters(result.Page))
			}
		case a.screen == screenList:
			a, cmd = a.handleListKeys(msg)
		case a.screen == screenDetail:
			a.detail, cmd = a.detail.Update(msg)
		}
		cmds = append(cmds, cmd)

	case charactersLoadedMsg:
		if a.list.Apply(msg) && msg.err == nil {
			a.cursor = 0
			a.syncPaginator()
		}

	case characterLoadedMsg:
		a.detail.SetCharacter(msg)

	case backToListMsg:
		a.screen = screenList

	case spinner.TickMsg:
		if !a.list.Loading() {
			a.spinning = false
			break
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case clearMsgMsg:
		a.live.ClearIf(msg.count)
	}

	if n := a.live.Count(); n != a.announced {
		a.announced = n
		cmds = append(cmds, clearMsg(n, a.config.MessageTimeout()))
	}

	return a, tea.Batch(cmds...)
}

// load starts the spinner alongside a page fetch. A nil fetch is a no-op.
func (a *App) load(fetch tea.Cmd) tea.Cmd {
	if fetch == nil {
		return nil
	}
	if a.spinning {
		return fetch
	}
	a.spinning = true
	return tea.Batch(fetch, a.spinner.Tick)
}

func (a App) handleListKeys(msg tea.KeyMsg) (App, tea.Cmd) {
	items := a.list.Items()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.PrevPage):
		return a, a.load(a.list.PreviousPage())

	case key.Matches(msg, a.keys.NextPage):
		return a, a.load(a.list.NextPage())

	case key.Matches(msg, a.keys.Retry):
		return a, a.load(a.list.Retry())

	case key.Matches(msg, a.keys.Jump):
		if a.list.TotalPages > 0 {
			return a, a.jump.Open(a.list.TotalPages)
		}

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
	}

	// cursor and selection only apply while a page is on screen
	if a.list.Phase() != PhaseLoaded || len(items) == 0 {
		return a, nil
	}

	prev := a.cursor
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		a.cursor = len(items) - 1
	case key.Matches(msg, a.keys.Enter):
		c := items[a.cursor]
		a.screen = screenDetail
		return a, a.detail.Open(c.ID, c.Name)
	}
	if a.cursor != prev {
		announce(a.live, a.logger, items[a.cursor].Announcement())
	}
	return a, nil
}

func (a *App) syncPaginator() {
	total := max(a.list.TotalPages, 1)
	a.paginator.TotalPages = total
	a.paginator.Page = min(max(a.list.CurrentPage-1, 0), total-1)
	if total > maxDots {
		a.paginator.Type = paginator.Arabic
	} else {
		a.paginator.Type = paginator.Dots
	}
}

func (a App) View() string {
	if a.screen == screenDetail {
		return a.detail.View(a.width)
	}
	return renderList(a)
}
