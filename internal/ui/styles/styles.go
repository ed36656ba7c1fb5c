package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/turkosaurus/multiverse/internal/types"
)

// Colors
var (
	ColorRed     = lipgloss.Color("#FF5555")
	ColorGreen   = lipgloss.Color("#50FA7B")
	ColorYellow  = lipgloss.Color("#F1FA8C")
	ColorBlue    = lipgloss.Color("#8BE9FD")
	ColorPurple  = lipgloss.Color("#BD93F9")
	ColorCyan    = lipgloss.Color("#8BE9FD")
	ColorOrange  = lipgloss.Color("#FFB86C")
	ColorPink    = lipgloss.Color("#FF79C6")
	ColorGray    = lipgloss.Color("#6272A4")
	ColorWhite   = lipgloss.Color("#F8F8F2")
	ColorSubtle  = lipgloss.Color("#44475A")
	ColorBgLight = lipgloss.Color("#44475A")
)

// Styles contains all the lipgloss styles for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	StatusAlive   lipgloss.Style
	StatusDead    lipgloss.Style
	StatusUnknown lipgloss.Style
	Selected      lipgloss.Style
	Normal        lipgloss.Style
	Dimmed        lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Error         lipgloss.Style
	Species       lipgloss.Style
	Location      lipgloss.Style
	Spinner       lipgloss.Style
	Pagination    lipgloss.Style
	LiveRegion    lipgloss.Style
	Header        lipgloss.Style
}

// DefaultStyles returns the default styles for the UI
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorGray),

		StatusAlive: lipgloss.NewStyle().
			Foreground(ColorGreen),

		StatusDead: lipgloss.NewStyle().
			Foreground(ColorRed),

		StatusUnknown: lipgloss.NewStyle().
			Foreground(ColorGray),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Background(ColorBgLight).
			Foreground(ColorWhite),

		Normal: lipgloss.NewStyle().
			Foreground(ColorWhite),

		Dimmed: lipgloss.NewStyle().
			Foreground(ColorGray),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorGray),

		Error: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),

		Species: lipgloss.NewStyle().
			Foreground(ColorPink),

		Location: lipgloss.NewStyle().
			Foreground(ColorBlue),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorYellow),

		Pagination: lipgloss.NewStyle().
			Foreground(ColorOrange),

		LiveRegion: lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorSubtle).
			MarginBottom(1),
	}
}

// StatusIcon returns the icon for a status class
func StatusIcon(class types.StatusClass) string {
	switch class {
	case types.ClassAlive:
		return "●"
	case types.ClassDead:
		return "✗"
	default:
		return "?"
	}
}

// StatusStyle returns the style for a status class
func (s Styles) StatusStyle(class types.StatusClass) lipgloss.Style {
	switch class {
	case types.ClassAlive:
		return s.StatusAlive
	case types.ClassDead:
		return s.StatusDead
	default:
		return s.StatusUnknown
	}
}
