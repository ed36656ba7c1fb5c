package types

import (
	"fmt"
	"time"
)

// Character represents a character record from the API
type Character struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Status   string      `json:"status"` // Alive, Dead, unknown
	Species  string      `json:"species"`
	Type     string      `json:"type"`
	Gender   string      `json:"gender"`
	Origin   LocationRef `json:"origin"`
	Location LocationRef `json:"location"`
	Image    string      `json:"image"`
	Episode  []string    `json:"episode"`
	URL      string      `json:"url"`
	Created  time.Time   `json:"created"`
}

// LocationRef points at a location resource. URL is empty when the
// location is unknown.
type LocationRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PageInfo is the pagination metadata of a list response
type PageInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// CharacterPage is the API response for listing characters
type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}

// StatusClass is the display class derived from a character status
type StatusClass string

const (
	ClassAlive   StatusClass = "status-alive"
	ClassDead    StatusClass = "status-dead"
	ClassUnknown StatusClass = "status-unknown"
)

// Announcement returns the screen-reader description of a character
func (c *Character) Announcement() string {
	return fmt.Sprintf("%s, %s, %s", c.Name, c.Species, c.Status)
}

// EpisodeCount returns the number of episodes the character appears in
func (c *Character) EpisodeCount() int {
	return len(c.Episode)
}
