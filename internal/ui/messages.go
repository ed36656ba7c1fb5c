package ui

import "github.com/turkosaurus/multiverse/internal/types"

type (
	// charactersLoadedMsg carries the result of one page fetch. seq identifies
	// the LoadCharacters call that produced it.
	charactersLoadedMsg struct {
		seq  int
		page int
		resp *types.CharacterPage
		err  error
	}
	characterLoadedMsg struct {
		id        int
		character *types.Character
		err       error
	}
	mountMsg    struct{}
	clearMsgMsg struct{ count int }
)

// backToListMsg signals that the detail view wants to return to the list.
type backToListMsg struct{}
