// Package browse provides the sentence-bank browser view for the TUI.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/typebank-cli/internal/core/ports/driving"
)

// pageSize is the number of sentences shown per page.
const pageSize = 15

// View is the paginated, filterable sentence browser.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	filter  *input.FilterInput
	list    *list.SentenceList
	library driving.LibraryService
	ctx     context.Context

	page          int
	total         int64
	activeFilter  string
	status        string
	err           error
	filterFocused bool
	confirmDelete bool

	width  int
	height int
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, library driving.LibraryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		filter:  input.NewFilterInput(s),
		list:    list.NewSentenceList(s),
		library: library,
		ctx:     context.Background(),
		page:    1,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the first page.
func (v *View) Init() tea.Cmd {
	return v.loadPage(1, "")
}

// SetDimensions updates the rendering size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.filter.SetWidth(width)
	v.list.SetDimensions(width, height-6)
}

// Page returns the current page number.
func (v *View) Page() int {
	return v.page
}

// Total returns the number of sentences matching the filter.
func (v *View) Total() int64 {
	return v.total
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// FilterFocused reports whether the filter input is capturing keys.
// The app must not treat plain letters as global shortcuts while the
// user is typing a filter.
func (v *View) FilterFocused() bool {
	return v.filterFocused
}

// loadPage returns a command fetching one page from the library.
func (v *View) loadPage(page int, filter string) tea.Cmd {
	return func() tea.Msg {
		result, err := v.library.List(v.ctx, page, pageSize, filter)
		return messages.PageLoaded{Page: result, Number: page, Filter: filter, Err: err}
	}
}

// deleteSelected returns a command deleting the sentence under the
// cursor, followed by a reload of the current page.
func (v *View) deleteSelected(id int64) tea.Cmd {
	return func() tea.Msg {
		affected, err := v.library.Delete(v.ctx, id)
		return messages.SentenceDeleted{ID: id, Affected: affected, Err: err}
	}
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PageLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.status = "Load failed: " + msg.Err.Error()
			return v, nil
		}
		v.err = nil
		v.page = msg.Number
		v.activeFilter = msg.Filter
		v.total = msg.Page.Total
		v.list.SetSentences(msg.Page.Data)
		v.status = ""
		return v, nil

	case messages.SentenceDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.status = "Delete failed: " + msg.Err.Error()
			return v, nil
		}
		if msg.Affected {
			v.status = fmt.Sprintf("Deleted sentence %d", msg.ID)
		} else {
			v.status = fmt.Sprintf("Sentence %d was already gone", msg.ID)
		}
		// Refresh so the page and total reflect the removal.
		return v, v.loadPage(v.page, v.activeFilter)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	// Filter input mode: enter submits, esc cancels, everything else
	// types into the input.
	if v.filterFocused {
		switch {
		case keymap.Matches(keyStr, v.keymap.Confirm):
			v.filterFocused = false
			v.filter.Blur()
			return v, v.loadPage(1, v.filter.Value())
		case keymap.Matches(keyStr, v.keymap.Cancel):
			v.filterFocused = false
			v.filter.Blur()
			v.filter.SetValue(v.activeFilter)
			return v, nil
		default:
			var cmd tea.Cmd
			v.filter, cmd = v.filter.Update(msg)
			return v, cmd
		}
	}

	// Delete confirmation mode.
	if v.confirmDelete {
		v.confirmDelete = false
		if keymap.Matches(keyStr, v.keymap.Confirm) {
			if selected := v.list.Selected(); selected != nil {
				v.status = fmt.Sprintf("Deleting sentence %d...", selected.ID)
				return v, v.deleteSelected(selected.ID)
			}
		}
		v.status = "Delete cancelled"
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(keyStr, v.keymap.NextPage):
		if int64(v.page)*pageSize < v.total {
			return v, v.loadPage(v.page+1, v.activeFilter)
		}
	case keymap.Matches(keyStr, v.keymap.PrevPage):
		if v.page > 1 {
			return v, v.loadPage(v.page-1, v.activeFilter)
		}
	case keymap.Matches(keyStr, v.keymap.Filter):
		v.filterFocused = true
		return v, v.filter.Focus()
	case keymap.Matches(keyStr, v.keymap.Delete):
		if v.list.Selected() != nil {
			v.confirmDelete = true
			v.status = "Delete selected sentence? enter confirms, any other key cancels"
		}
	}
	return v, nil
}

// View renders the browse view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Typebank"))
	b.WriteString("\n\n")
	b.WriteString(v.filter.View())
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n")

	pages := (v.total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	position := fmt.Sprintf("Page %d/%d · %d sentences", v.page, pages, v.total)
	if v.activeFilter != "" {
		position += fmt.Sprintf(" · filter %q", v.activeFilter)
	}
	b.WriteString(v.styles.StatusBar.Render(position))
	b.WriteString("\n")

	if v.status != "" {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render(v.status))
		} else {
			b.WriteString(v.styles.Warning.Render(v.status))
		}
		b.WriteString("\n")
	}

	var hints []string
	for _, binding := range v.keymap.BrowseHelp() {
		hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
	}
	b.WriteString(v.styles.Help.Render(strings.Join(hints, " · ")))

	return b.String()
}
