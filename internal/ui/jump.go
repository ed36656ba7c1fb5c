package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/multiverse/internal/ui/styles"
)

// PageJumpResult is returned when the prompt closes on a valid page.
type PageJumpResult struct {
	Page int
}

// PageJump is the "go to page" prompt.
type PageJump struct {
	active bool
	input  textinput.Model
	total  int
	err    string
}

func NewPageJump() PageJump {
	in := textinput.New()
	in.Prompt = "page: "
	in.Placeholder = "number"
	in.CharLimit = 6
	in.Cursor.SetMode(cursor.CursorStatic)
	return PageJump{input: in}
}

// Open activates the prompt for pages 1..total.
func (pj *PageJump) Open(total int) tea.Cmd {
	pj.active = true
	pj.total = total
	pj.err = ""
	pj.input.SetValue("")
	return pj.input.Focus()
}

// Active returns whether the prompt is currently showing.
func (pj PageJump) Active() bool { return pj.active }

// Update handles key events while the prompt is active.
// result is non-nil when the prompt closes on a page in range.
func (pj PageJump) Update(msg tea.KeyMsg) (PageJump, tea.Cmd, *PageJumpResult) {
	switch msg.Type {
	case tea.KeyEscape:
		pj.close()
		return pj, nil, nil

	case tea.KeyEnter:
		page, err := pj.parse()
		if err != nil {
			pj.err = err.Error()
			return pj, nil, nil
		}
		pj.close()
		return pj, nil, &PageJumpResult{Page: page}

	default:
		var cmd tea.Cmd
		pj.input, cmd = pj.input.Update(msg)
		pj.err = ""
		return pj, cmd, nil
	}
}

func (pj *PageJump) close() {
	pj.active = false
	pj.err = ""
	pj.input.Blur()
}

func (pj PageJump) parse() (int, error) {
	v := strings.TrimSpace(pj.input.Value())
	page, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q is not a page number", v)
	}
	if page < 1 || (pj.total > 0 && page > pj.total) {
		return 0, fmt.Errorf("page must be between 1 and %d", pj.total)
	}
	return page, nil
}

// View renders the input and any validation error.
func (pj PageJump) View(s styles.Styles) string {
	row := pj.input.View()
	if pj.err != "" {
		row += "  " + s.Error.Render(pj.err)
	}
	return row
}

// HelpView returns the help bar text when the prompt is active.
func (pj PageJump) HelpView(s styles.Styles) string {
	return s.Dimmed.Render("↵ go  esc cancel")
}
