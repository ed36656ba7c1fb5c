package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/multiverse/internal/rickmorty"
	"github.com/turkosaurus/multiverse/internal/types"
)

// LoadErrorMessage is shown and announced whenever a page fails to load.
// The underlying error only goes to the log.
const LoadErrorMessage = "Error loading characters. Please try again."

// Phase is the position of a CharacterList in its load cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// CharacterList owns the paginated list state and turns navigation intents
// into page fetches. It is only mutated from the Bubble Tea update loop.
type CharacterList struct {
	CurrentPage int
	TotalPages  int

	page   Fetchable[[]types.Character]
	errMsg string
	seq    int // id of the latest LoadCharacters call

	ctx       context.Context
	client    rickmorty.Fetcher
	announcer Announcer
	logger    *slog.Logger
}

// NewCharacterList returns an idle list on page 1 of 1. logger is the
// diagnostic sink for raw fetch errors.
func NewCharacterList(ctx context.Context, client rickmorty.Fetcher, announcer Announcer, logger *slog.Logger) CharacterList {
	if logger == nil {
		logger = slog.Default()
	}
	return CharacterList{
		CurrentPage: 1,
		TotalPages:  1,
		ctx:         ctx,
		client:      client,
		announcer:   announcer,
		logger:      logger,
	}
}

// LoadCharacters enters the loading phase and returns the command that
// fetches page. Only the result of the most recent call is applied.
func (cl *CharacterList) LoadCharacters(page int) tea.Cmd {
	cl.seq++
	cl.page.SetFetching()
	cl.errMsg = ""
	announce(cl.announcer, cl.logger, fmt.Sprintf("Loading characters from page %d", page))
	return loadPage(cl.ctx, cl.client, cl.seq, page)
}

// PreviousPage loads the page before the current one. Returns nil on the
// first page.
func (cl *CharacterList) PreviousPage() tea.Cmd {
	if cl.CurrentPage <= 1 {
		return nil
	}
	return cl.LoadCharacters(cl.CurrentPage - 1)
}

// NextPage loads the page after the current one. Returns nil on the last
// page.
func (cl *CharacterList) NextPage() tea.Cmd {
	if cl.CurrentPage >= cl.TotalPages {
		return nil
	}
	return cl.LoadCharacters(cl.CurrentPage + 1)
}

// Retry reloads the current page.
func (cl *CharacterList) Retry() tea.Cmd {
	return cl.LoadCharacters(cl.CurrentPage)
}

// Apply folds a fetch result into the list. It reports whether the result
// was applied; results from superseded requests are dropped.
func (cl *CharacterList) Apply(msg charactersLoadedMsg) bool {
	if msg.seq != cl.seq {
		cl.logger.Debug("discard stale page",
			"page", msg.page,
			"seq", msg.seq,
			"latest", cl.seq,
		)
		return false
	}

	if msg.err != nil {
		cl.page.SetError(msg.err)
		cl.errMsg = LoadErrorMessage
		cl.logger.Error("load characters",
			"page", msg.page,
			"error", msg.err,
		)
		announce(cl.announcer, cl.logger, LoadErrorMessage)
		return true
	}

	cl.page.SetData(msg.resp.Results)
	cl.CurrentPage = msg.page
	cl.TotalPages = msg.resp.Info.Pages
	announce(cl.announcer, cl.logger, fmt.Sprintf("Loaded %d characters on page %d of %d",
		len(msg.resp.Results), msg.page, msg.resp.Info.Pages))
	return true
}

// Items returns the characters of the last successfully loaded page.
func (cl *CharacterList) Items() []types.Character {
	return cl.page.Data
}

// Loading reports whether a fetch is in flight.
func (cl *CharacterList) Loading() bool {
	return cl.page.IsFetching()
}

// ErrorMessage returns the user-facing error, or "" when there is none.
func (cl *CharacterList) ErrorMessage() string {
	return cl.errMsg
}

// Phase derives the current load phase.
func (cl *CharacterList) Phase() Phase {
	switch {
	case cl.page.IsFetching():
		return PhaseLoading
	case cl.errMsg != "":
		return PhaseErrored
	case cl.page.HasData():
		return PhaseLoaded
	}
	return PhaseIdle
}

// StatusClass maps a character status to its display class.
func (cl *CharacterList) StatusClass(status string) types.StatusClass {
	return StatusClass(status)
}

// StatusClass maps a character status to its display class. Matching is
// case-insensitive; anything other than alive or dead is unknown.
func StatusClass(status string) types.StatusClass {
	switch strings.ToLower(status) {
	case "alive":
		return types.ClassAlive
	case "dead":
		return types.ClassDead
	default:
		return types.ClassUnknown
	}
}
