package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/turkosaurus/multiverse/internal/types"
	"github.com/turkosaurus/multiverse/internal/ui/styles"
)

const (
	pageTitle    = "Explore the Multiverse"
	pageSubtitle = "Discover all the crazy characters from Rick and Morty"
	loadingText  = "Loading characters from the multiverse..."
	emptyText    = "no characters on this page"

	// rows used by title, subtitle, header margin, pagination, live region and help
	listOverhead = 8
)

func renderList(a App) string {
	w, h := a.width, a.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	parts := []string{
		a.styles.Title.Render(pageTitle) + "  " + a.styles.Dimmed.Render(Version),
		a.styles.Header.Width(w).Render(a.styles.Subtitle.Render(pageSubtitle)),
	}

	switch a.list.Phase() {
	case PhaseLoading:
		parts = append(parts, a.spinner.View()+" "+a.styles.Dimmed.Render(loadingText))
	case PhaseErrored:
		parts = append(parts,
			a.styles.Error.Render(a.list.ErrorMessage()),
			bindingHelp(a.styles, a.keys.Retry),
		)
	case PhaseLoaded:
		parts = append(parts,
			renderRows(a, w, h-listOverhead),
			renderPagination(a),
		)
	default:
		parts = append(parts, "")
	}

	if msg := a.live.Message(); msg != "" {
		parts = append(parts, a.styles.LiveRegion.Render(msg))
	}

	if a.jump.Active() {
		parts = append(parts, a.jump.View(a.styles), a.jump.HelpView(a.styles))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	bindings := a.keys.ListHelp()
	if a.showHelp {
		bindings = a.keys.FullHelp()
	}
	parts = append(parts, renderHelp(a.styles, bindings))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRows(a App, width, height int) string {
	items := a.list.Items()
	if len(items) == 0 {
		return a.styles.Dimmed.Render(emptyText)
	}

	// icon(1) + name + species + gender + location(rest), colSep between
	const colName, colSpecies, colGender, colSep = 24, 14, 8, 2
	colLocation := width - 1 - colName - colSpecies - colGender - 4*colSep
	if colLocation < 10 {
		colLocation = 10
	}

	height = max(height, 1)
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := min(start+height, len(items))

	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		rows = append(rows, renderRow(a.styles, items[i], i == a.cursor,
			colName, colSpecies, colGender, colLocation, colSep))
	}
	if len(items) > height {
		rows = append(rows, a.styles.Dimmed.Render(fmt.Sprintf(" %d/%d", a.cursor+1, len(items))))
	}
	return strings.Join(rows, "\n")
}

func renderRow(s styles.Styles, c types.Character, selected bool, colName, colSpecies, colGender, colLocation, colSep int) string {
	class := StatusClass(c.Status)
	sep := strings.Repeat(" ", colSep)

	icon := s.StatusStyle(class).Render(styles.StatusIcon(class))
	name := fmt.Sprintf("%-*s", colName, truncate(c.Name, colName))
	species := s.Species.Render(fmt.Sprintf("%-*s", colSpecies, truncate(c.Species, colSpecies)))
	gender := fmt.Sprintf("%-*s", colGender, truncate(c.Gender, colGender))
	location := s.Location.Render(truncate(c.Location.Name, colLocation))

	row := icon + sep + name + sep + species + sep + gender + sep + location
	if selected {
		row = s.Selected.Render(row)
	}
	return row
}

func renderPagination(a App) string {
	label := a.styles.Pagination.Render(fmt.Sprintf("Page %d of %d", a.list.CurrentPage, a.list.TotalPages))
	if a.paginator.Type == paginator.Arabic {
		return label
	}
	return label + "  " + a.paginator.View()
}

// bindingHelp renders a single key binding as a "key  desc" help item.
func bindingHelp(s styles.Styles, b key.Binding) string {
	return s.HelpKey.Render(b.Help().Key) + " " + s.HelpDesc.Render(b.Help().Desc)
}

func renderHelp(s styles.Styles, bindings []key.Binding) string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, bindingHelp(s, b))
	}
	return strings.Join(items, "  ")
}

// truncate shortens s to at most maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
