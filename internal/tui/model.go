package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/styles"
)

// Options configures the TUI behavior.
type Options struct {
	Markdown    bool   // render dialog descriptions as markdown
	MaxToasts   int    // maximum toasts shown at once (0 = unlimited)
	ToastsOnTop bool   // stack toasts top-right instead of bottom-right
	Status      string // text shown while no dialog is open

	// Keys rebinds dialog actions by name; see KeyMap.WithOverrides.
	// Invalid overrides are ignored in favor of the defaults.
	Keys map[string][]string
}

// dialogChangedMsg is sent when the Confirmer state changes. The model
// re-reads the state rather than trusting message order.
type dialogChangedMsg struct{}

// doneMsg is sent when the work driving the program has finished.
type doneMsg struct {
	err error
}

// statusMsg replaces the idle status text. seq orders updates that were
// sent concurrently; an update older than the one shown is dropped.
type statusMsg struct {
	seq  uint64
	text string
}

// Model binds a dialog.Confirmer and a toast stack to the screen.
type Model struct {
	confirmer *dialog.Confirmer
	opts      Options
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model

	modal     Modal
	visible   bool
	pendingID uint64

	toasts    toastStack
	status    string
	statusSeq uint64

	width    int
	height   int
	done     bool
	err      error
	quitting bool
}

// New creates a new TUI model.
func New(c *dialog.Confirmer, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	h := help.New()
	helpStyle := lipgloss.NewStyle().Foreground(styles.ColorGray)
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	h.ShortSeparator = " • "

	m := Model{
		confirmer: c,
		opts:      opts,
		keys:      keyMap(opts.Keys),
		help:      h,
		spinner:   s,
		status:    opts.Status,
		toasts: toastStack{
			maxVisible: opts.MaxToasts,
			top:        opts.ToastsOnTop,
		},
	}
	m.sync()
	return m
}

func keyMap(overrides map[string][]string) KeyMap {
	keys, err := DefaultKeyMap().WithOverrides(overrides)
	if err != nil {
		return DefaultKeyMap()
	}
	return keys
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Err returns the error reported by the work that drove the program.
func (m Model) Err() error {
	return m.err
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dialogChangedMsg:
		m.sync()
		return m, nil

	case statusMsg:
		if msg.seq < m.statusSeq {
			return m, nil
		}
		m.status = msg.text
		m.statusSeq = msg.seq
		return m, nil

	case toastMsg:
		return m, m.toasts.add(msg.toast)

	case toastExpiredMsg:
		m.toasts.remove(msg.id)
		if m.done && m.toasts.len() == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case doneMsg:
		m.done = true
		m.err = msg.err
		// Keep the program up until the remaining toasts expire
		if m.toasts.len() == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes key presses to the dialog when it is visible.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.confirmer.Dismiss(dialog.ErrDismissed)
		m.quitting = true
		return m, tea.Quit
	}

	if !m.visible {
		// Any key skips the wait for lingering toasts
		if m.done {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.modal.ToggleSelection()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.modal.ConfirmSelected() {
			m.confirmer.HandleConfirm()
		} else {
			m.confirmer.HandleCancel()
		}
	case key.Matches(msg, m.keys.Confirm):
		m.confirmer.HandleConfirm()
	case key.Matches(msg, m.keys.Cancel):
		m.confirmer.HandleCancel()
	default:
		return m, nil
	}

	m.sync()
	return m, nil
}

// sync copies the Confirmer state into the model. A new pending request
// gets a fresh modal with the confirm button selected.
func (m *Model) sync() {
	st := m.confirmer.State()

	if st.PendingID != m.pendingID || !m.visible {
		m.modal = NewModal(st.Config, m.opts.Markdown)
	} else {
		m.modal.config = st.Config
	}

	m.visible = st.Visible
	m.pendingID = st.PendingID
}

// View renders the model. An open dialog is drawn as a layer over the
// status line and toasts.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch {
	case m.done:
		status = statusStyle.Render("done")
	case m.status != "":
		status = m.spinner.View() + statusStyle.Render(m.status)
	}

	toasts := m.toasts.view(m.width)

	if m.width == 0 || m.height == 0 {
		body := status
		if m.visible {
			body = m.modal.View(m.width, m.help.View(m.keys))
		}
		return lipgloss.JoinVertical(lipgloss.Left, body, toasts)
	}

	background := m.background(status, toasts)
	if !m.visible {
		return background
	}
	return m.modal.Overlay(background, m.help.View(m.keys), m.width, m.height)
}

// background lays out the status line and the toast stack over the whole
// screen. The status is centered while no dialog is open and moves to the
// top-left corner so an open dialog does not cover it.
func (m Model) background(status, toasts string) string {
	toastsHeight := 0
	if toasts != "" {
		toastsHeight = lipgloss.Height(toasts)
	}
	bodyHeight := max(m.height-toastsHeight, 1)

	hPos, vPos := lipgloss.Center, lipgloss.Center
	if m.visible {
		hPos, vPos = lipgloss.Left, lipgloss.Top
	}
	main := lipgloss.Place(m.width, bodyHeight, hPos, vPos, status)

	if toasts == "" {
		return main
	}
	if m.toasts.top {
		return lipgloss.JoinVertical(lipgloss.Left, toasts, main)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, toasts)
}
