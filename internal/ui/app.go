package ui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/morgang/tubedeck/internal/browser"
	"github.com/morgang/tubedeck/internal/config"
	"github.com/morgang/tubedeck/internal/search"
)

// Focus indicates which control is active
type Focus int

const (
	FocusNone Focus = iota
	FocusSearch
	FocusButton
)

// Vertical layout offsets within the centered column
const (
	logoRow    = 0
	taglineRow = 1
	boxTopRow  = 3 // rounded border: three rows
	buttonRow  = 7
	helpRow    = 9

	contentHeight = 10
	statusHeight  = 1

	searchBoxWidth = 48
)

// KeyMap defines the key bindings
type KeyMap struct {
	Submit      key.Binding
	FocusNext   key.Binding
	Blur        key.Binding
	FocusSearch key.Binding
	Home        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "focus search"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "open homepage"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// App is the main Bubble Tea model
type App struct {
	search   *SearchModel
	keys     KeyMap
	settings *config.Settings

	focus     Focus
	width     int
	height    int
	quitting  bool
	statusMsg string

	// Y offset where the centered column starts (for mouse hits)
	topPad int

	watcher *fsnotify.Watcher
}

// NewApp creates a new application instance
func NewApp(settings *config.Settings) (*App, error) {
	app := &App{
		search:   NewSearchModel(),
		keys:     DefaultKeyMap(),
		settings: settings,
		focus:    FocusNone,
	}

	// Watch the settings file so theme edits apply live
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		app.watcher = watcher
	}

	return app, nil
}

// SetQuery prefills the search field (from command-line arguments)
func (a *App) SetQuery(query string) {
	a.search.SetQuery(query)
}

// Init initializes the application. The field starts focused, the way the
// homepage autofocuses its search box.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("tubedeck"),
		a.focusSearch(),
		textinput.Blink,
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watchSettings())
	}
	return tea.Batch(cmds...)
}

type navigatedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}

type settingsChangedMsg struct{}

// setStatus sets a status message and returns a command to clear it after 2 seconds
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// watchSettings blocks on the settings directory until the settings file
// changes, then reports it. Re-issued after every reload.
func (a *App) watchSettings() tea.Cmd {
	return func() tea.Msg {
		// Editors replace files on save, so watch the directory
		if err := a.watcher.Add(config.StorageDir()); err != nil {
			return nil
		}

		for {
			select {
			case event, ok := <-a.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != filepath.Base(config.SettingsFile()) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return settingsChangedMsg{}
				}
			case _, ok := <-a.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// reloadSettings re-reads the settings file and applies theme and browser
// preference without restarting
func (a *App) reloadSettings() tea.Cmd {
	settings, err := config.LoadSettings()
	if err != nil {
		return a.setStatus("settings reload failed: " + err.Error())
	}
	a.settings = settings
	ApplyTheme(settings.Theme)
	browser.SetPreferredBrowser(browser.ParseBrowser(settings.PreferredBrowser))
	a.search.applyStyles()
	return a.setStatus("settings reloaded")
}

// submit runs the dispatcher: navigation is gated on the trimmed query, but
// the encoded payload is the original untrimmed text
func (a *App) submit() tea.Cmd {
	target, ok := search.ResultsURL(a.search.Query())
	if !ok {
		// Blank query: silent no-op, no error shown
		return nil
	}
	return a.navigateTo(target)
}

// navigateTo opens the URL in the browser. This is the terminal effect: on
// success the app quits, the TUI analogue of the page navigating away.
func (a *App) navigateTo(url string) tea.Cmd {
	return func() tea.Msg {
		err := browser.OpenURL(url)
		return navigatedMsg{url: url, err: err}
	}
}

// focusSearch moves input focus to the field
func (a *App) focusSearch() tea.Cmd {
	a.focus = FocusSearch
	return a.search.Focus()
}

// blurSearch removes input focus from the field; the query is untouched
func (a *App) blurSearch() {
	if a.focus == FocusSearch {
		a.focus = FocusNone
	}
	a.search.Blur()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case navigatedMsg:
		if msg.err != nil {
			// No retry: the launch either worked or it didn't
			return a, a.setStatus("couldn't open browser: " + msg.err.Error())
		}
		return a, a.quit()

	case settingsChangedMsg:
		cmds := []tea.Cmd{a.reloadSettings()}
		if a.watcher != nil {
			cmds = append(cmds, a.watchSettings())
		}
		return a, tea.Batch(cmds...)

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil
	}

	// Cursor blink and other field messages
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return a, cmd
}

// handleKey routes key presses by focus
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.focus == FocusSearch {
		switch {
		case key.Matches(msg, a.keys.Submit):
			// Suppress the field's own handling; the dispatcher decides
			return a, a.submit()
		case key.Matches(msg, a.keys.FocusNext):
			a.blurSearch()
			a.focus = FocusButton
			return a, nil
		case key.Matches(msg, a.keys.Blur):
			a.blurSearch()
			return a, nil
		}

		// Everything else is typing: the field's content is the query,
		// verbatim
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Submit):
		if a.focus == FocusButton {
			return a, a.submit()
		}
		return a, a.focusSearch()
	case key.Matches(msg, a.keys.FocusNext):
		if a.focus == FocusButton {
			a.focus = FocusNone
			return a, nil
		}
		return a, a.focusSearch()
	case key.Matches(msg, a.keys.FocusSearch):
		return a, a.focusSearch()
	case key.Matches(msg, a.keys.Home):
		return a, a.navigateTo(search.HomeURL())
	}

	return a, nil
}

// handleMouse maps clicks to the three targets: logo (home link), search
// field, and the submit button
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	row := msg.Y - a.topPad
	switch {
	case row == logoRow && a.hitX(a.logoView(), msg.X):
		return a, a.navigateTo(search.HomeURL())

	case row >= boxTopRow && row < boxTopRow+3 && a.hitX(a.search.View(), msg.X):
		if a.focus == FocusButton {
			a.focus = FocusNone
		}
		return a, a.focusSearch()

	case row == buttonRow && a.hitX(a.buttonView(), msg.X):
		a.blurSearch()
		a.focus = FocusButton
		return a, a.submit()
	}

	return a, nil
}

// hitX reports whether x falls inside s once s is centered on screen
func (a *App) hitX(s string, x int) bool {
	w := lipgloss.Width(s)
	start := (a.width - w) / 2
	return x >= start && x < start+w
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	if a.watcher != nil {
		a.watcher.Close()
	}
	return tea.Quit
}

// updateLayout recomputes measurements after a resize
func (a *App) updateLayout() {
	boxWidth := searchBoxWidth
	if a.width > 0 && boxWidth > a.width-6 {
		boxWidth = a.width - 6
	}
	// Inner width: box minus border, padding and the focus icon
	a.search.SetWidth(boxWidth - 9)

	a.topPad = (a.height - statusHeight - contentHeight) / 2
	if a.topPad < 0 {
		a.topPad = 0
	}
}

func (a *App) logoView() string {
	return logoBadgeStyle.Render("▶") + " " + logoTextStyle.Render("tubedeck")
}

func (a *App) buttonView() string {
	if a.focus == FocusButton {
		return activeButtonStyle.Render("Search")
	}
	return buttonStyle.Render("Search")
}

func (a *App) helpView() string {
	sep := helpStyle.Render(" · ")
	parts := []string{
		helpKeyStyle.Render("enter") + helpStyle.Render(" search"),
		helpKeyStyle.Render("tab") + helpStyle.Render(" controls"),
		helpKeyStyle.Render("h") + helpStyle.Render(" home"),
		helpKeyStyle.Render("q") + helpStyle.Render(" quit"),
	}
	return strings.Join(parts, sep)
}

// View renders the application
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 {
		return "Loading..."
	}

	rows := make([]string, contentHeight)
	rows[logoRow] = a.logoView()
	rows[taglineRow] = taglineStyle.Render("search, straight from your terminal")
	box := strings.Split(a.search.View(), "\n")
	for i, line := range box {
		if boxTopRow+i < len(rows) {
			rows[boxTopRow+i] = line
		}
	}
	rows[buttonRow] = a.buttonView()
	rows[helpRow] = a.helpView()

	var b strings.Builder
	for i := 0; i < a.topPad; i++ {
		b.WriteString("\n")
	}
	for _, row := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, row))
		b.WriteString("\n")
	}

	// Pin the status line to the bottom row
	used := a.topPad + contentHeight
	for i := used; i < a.height-statusHeight; i++ {
		b.WriteString("\n")
	}
	if a.statusMsg != "" {
		b.WriteString(statusStyle.Render(a.statusMsg))
	}

	return b.String()
}

var _ tea.Model = (*App)(nil)
