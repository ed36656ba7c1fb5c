package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/turkosaurus/multiverse/internal/types"
)

const createdFormat = "2006-01-02 15:04"

// CharacterMarkdown describes a character as a markdown document.
func CharacterMarkdown(c types.Character) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Name)
	fmt.Fprintf(&sb, "*%s*\n\n", c.Announcement())

	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&sb, "- **%s:** %s\n", label, value)
	}
	field("Status", c.Status)
	field("Species", c.Species)
	field("Type", c.Type)
	field("Gender", c.Gender)
	field("Origin", c.Origin.Name)
	field("Location", c.Location.Name)
	field("Episodes", fmt.Sprintf("%d", c.EpisodeCount()))
	if !c.Created.IsZero() {
		field("Created", c.Created.UTC().Format(createdFormat))
	}

	if c.Image != "" || c.URL != "" {
		sb.WriteString("\n## Links\n\n")
		if c.Image != "" {
			fmt.Fprintf(&sb, "- Image: %s\n", c.Image)
		}
		if c.URL != "" {
			fmt.Fprintf(&sb, "- Resource: %s\n", c.URL)
		}
	}
	return sb.String()
}

// RenderCharacter renders a character for the terminal using the named
// glamour style ("dark", "light", "notty", "auto").
func RenderCharacter(c types.Character, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(CharacterMarkdown(c))
	if err != nil {
		return "", fmt.Errorf("render character %d: %w", c.ID, err)
	}
	return out, nil
}
