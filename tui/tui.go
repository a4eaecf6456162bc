// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen task board and post feed over the state store
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"culturadesk/config"
	"culturadesk/models"
	"culturadesk/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewFeed
)

// Model is the main bubbletea model. It reads snapshots from the store
// and issues every change through Dispatch; it never edits state.
type Model struct {
	store  *store.Store
	styles Styles
	view   ViewMode

	// Board view state
	boardColumn int
	boardRow    int

	// Feed view state
	feedRow   int
	composing bool
	composer  textinput.Model

	// UI state
	width  int
	height int
}

// NewModel creates the TUI model over a store.
func NewModel(st *store.Store, theme config.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Share an update..."
	ti.CharLimit = models.MaxPostLength
	ti.Width = 60

	return Model{
		store:    st,
		styles:   NewStyles(theme),
		view:     ViewBoard,
		composer: ti,
	}
}

// Run starts the TUI event loop.
func Run(st *store.Store, theme config.Theme) error {
	p := tea.NewProgram(NewModel(st, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Composer owns the keyboard while a post is being written.
		if m.view == ViewFeed && m.composing {
			return m.updateFeed(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.view == ViewBoard {
				m.view = ViewFeed
			} else {
				m.view = ViewBoard
			}
			return m, nil
		}

		switch m.view {
		case ViewBoard:
			return m.updateBoard(msg)
		case ViewFeed:
			return m.updateFeed(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case ViewFeed:
		return m.viewFeed()
	default:
		return m.viewBoard()
	}
}
