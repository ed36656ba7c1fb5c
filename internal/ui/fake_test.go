package ui

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/turkosaurus/multiverse/internal/types"
)

// fakeFetcher serves canned pages and records every call.
type fakeFetcher struct {
	mu         sync.Mutex
	pages      map[int]*types.CharacterPage
	characters map[int]*types.Character
	err        error
	pageCalls  []int
	idCalls    []int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:      make(map[int]*types.CharacterPage),
		characters: make(map[int]*types.Character),
	}
}

func (f *fakeFetcher) FetchPage(_ context.Context, page int) (*types.CharacterPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageCalls = append(f.pageCalls, page)
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[page]
	if !ok {
		return nil, fmt.Errorf("no page %d", page)
	}
	return p, nil
}

func (f *fakeFetcher) FetchByID(_ context.Context, id int) (*types.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.idCalls = append(f.idCalls, id)
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.characters[id]
	if !ok {
		return nil, fmt.Errorf("no character %d", id)
	}
	return c, nil
}

func (f *fakeFetcher) PageCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.pageCalls...)
}

func (f *fakeFetcher) IDCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.idCalls...)
}

// recordingAnnouncer collects announcements in order.
type recordingAnnouncer struct {
	messages []string
}

func (r *recordingAnnouncer) Announce(message string) {
	r.messages = append(r.messages, message)
}

func (r *recordingAnnouncer) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

var (
	rickSanchez = types.Character{
		ID:       1,
		Name:     "Rick Sanchez",
		Status:   "Alive",
		Species:  "Human",
		Gender:   "Male",
		Origin:   types.LocationRef{Name: "Earth (C-137)", URL: "https://rickandmortyapi.com/api/location/1"},
		Location: types.LocationRef{Name: "Citadel of Ricks", URL: "https://rickandmortyapi.com/api/location/3"},
		Image:    "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
		Episode:  []string{"https://rickandmortyapi.com/api/episode/1", "https://rickandmortyapi.com/api/episode/2"},
		URL:      "https://rickandmortyapi.com/api/character/1",
	}
	mortySmith = types.Character{
		ID:       2,
		Name:     "Morty Smith",
		Status:   "Alive",
		Species:  "Human",
		Gender:   "Male",
		Origin:   types.LocationRef{Name: "unknown"},
		Location: types.LocationRef{Name: "Citadel of Ricks", URL: "https://rickandmortyapi.com/api/location/3"},
		Episode:  []string{"https://rickandmortyapi.com/api/episode/1"},
		URL:      "https://rickandmortyapi.com/api/character/2",
	}
	birdperson = types.Character{
		ID:      47,
		Name:    "Birdperson",
		Status:  "Dead",
		Species: "Bird-Person",
		Gender:  "Male",
	}
)

func strPtr(s string) *string { return &s }

func envelope(pages int, results ...types.Character) *types.CharacterPage {
	if results == nil {
		results = []types.Character{}
	}
	return &types.CharacterPage{
		Info:    types.PageInfo{Count: 826, Pages: pages, Next: strPtr("https://rickandmortyapi.com/api/character?page=2")},
		Results: results,
	}
}
