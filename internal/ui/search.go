package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchModel is the search box. It owns the two pieces of session state:
// the query text (always the field's verbatim content, no trimming or
// validation here) and the focus flag.
type SearchModel struct {
	input   textinput.Model
	focused bool
}

// NewSearchModel creates a new search box
func NewSearchModel() *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 40

	m := &SearchModel{input: ti}
	m.applyStyles()
	return m
}

// applyStyles repaints the embedded field from the active theme
func (m *SearchModel) applyStyles() {
	m.input.TextStyle = inputTextStyle
	m.input.PlaceholderStyle = placeholderStyle
	m.input.Cursor.Style = cursorStyle
}

// Focus gives the field input focus. The flag is presentational only
// (icon visibility, border) and never affects submission semantics.
func (m *SearchModel) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes input focus. The query value is untouched.
func (m *SearchModel) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused returns whether the field currently holds input focus
func (m *SearchModel) Focused() bool {
	return m.focused
}

// Query returns the field's current content, verbatim
func (m *SearchModel) Query() string {
	return m.input.Value()
}

// SetQuery replaces the field content (used for the startup prefill)
func (m *SearchModel) SetQuery(query string) {
	m.input.SetValue(query)
	m.input.CursorEnd()
}

// SetWidth sets the inner input width
func (m *SearchModel) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	m.input.Width = width
}

// Update forwards messages to the field while it has focus
func (m *SearchModel) Update(msg tea.Msg) (*SearchModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search box. The magnifier icon shows only while the
// field is focused, matching the homepage treatment.
func (m *SearchModel) View() string {
	box := searchBoxStyle
	icon := ""
	if m.focused {
		box = searchBoxFocusedStyle
		icon = searchIconStyle.Render("🔍 ")
	}
	return box.Render(icon + m.input.View())
}
