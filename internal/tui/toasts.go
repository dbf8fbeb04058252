package tui

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/nudge/internal/core/notify"
)

const toastWidth = 40

// toast is one entry in the toast stack.
type toast struct {
	id          uint64
	level       notify.Level
	title       string
	description string
	duration    time.Duration
}

// toastMsg adds a toast to the stack.
type toastMsg struct {
	toast toast
}

// toastExpiredMsg removes a toast from the stack.
type toastExpiredMsg struct {
	id uint64
}

// Toasts is a notify.Notifier that posts toasts into a running program.
// Calls made before Bind are queued and delivered once bound.
type Toasts struct {
	mu       sync.Mutex
	seq      uint64
	send     func(tea.Msg)
	queued   []tea.Msg
	duration time.Duration
	inflight sync.WaitGroup
}

// NewToasts creates a Toasts notifier whose toasts last duration unless a
// Show call sets its own.
func NewToasts(duration time.Duration) *Toasts {
	return &Toasts{duration: duration}
}

// Bind starts delivering toasts through send, typically tea.Program.Send.
func (t *Toasts) Bind(send func(tea.Msg)) {
	t.mu.Lock()
	t.send = send
	queued := t.queued
	t.queued = nil
	t.mu.Unlock()

	for _, msg := range queued {
		t.deliver(send, msg)
	}
}

// Wait blocks until every toast posted while bound has been received by
// the program.
func (t *Toasts) Wait() {
	t.inflight.Wait()
}

func (t *Toasts) deliver(send func(tea.Msg), msg tea.Msg) {
	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		send(msg)
	}()
}

// Unbind stops delivery; later toasts are queued again.
func (t *Toasts) Unbind() {
	t.mu.Lock()
	t.send = nil
	t.mu.Unlock()
}

func (t *Toasts) Success(title, description string) {
	t.post(notify.LevelSuccess, title, description, 0)
}

func (t *Toasts) Error(title, description string) {
	t.post(notify.LevelError, title, description, 0)
}

func (t *Toasts) Warning(title, description string) {
	t.post(notify.LevelWarning, title, description, 0)
}

func (t *Toasts) Info(title, description string) {
	t.post(notify.LevelInfo, title, description, 0)
}

func (t *Toasts) Show(opts notify.Options) {
	level := opts.Level
	if level == "" {
		level = notify.LevelInfo
	}
	t.post(level, opts.Title, opts.Description, opts.Duration)
}

func (t *Toasts) post(level notify.Level, title, description string, d time.Duration) {
	if d <= 0 {
		d = t.duration
	}

	t.mu.Lock()
	t.seq++
	msg := toastMsg{toast: toast{
		id:          t.seq,
		level:       level,
		title:       title,
		description: description,
		duration:    d,
	}}
	send := t.send
	if send == nil {
		t.queued = append(t.queued, msg)
	}
	t.mu.Unlock()

	// Send blocks until the event loop reads it, and post may be called
	// from inside Update.
	if send != nil {
		t.deliver(send, msg)
	}
}

var _ notify.Notifier = (*Toasts)(nil)

// toastStack holds the visible toasts ordered by id.
type toastStack struct {
	items      []toast
	maxVisible int
	top        bool
}

func (s *toastStack) add(t toast) tea.Cmd {
	s.items = append(s.items, t)
	sort.Slice(s.items, func(i, j int) bool { return s.items[i].id < s.items[j].id })

	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (s *toastStack) remove(id uint64) {
	for i, t := range s.items {
		if t.id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// visible returns the newest maxVisible toasts.
func (s *toastStack) visible() []toast {
	if s.maxVisible > 0 && len(s.items) > s.maxVisible {
		return s.items[len(s.items)-s.maxVisible:]
	}
	return s.items
}

func (s *toastStack) len() int {
	return len(s.items)
}

// view renders the visible toasts right-aligned within width.
func (s *toastStack) view(width int) string {
	items := s.visible()
	if len(items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(items))
	for _, t := range items {
		color := levelColor(t.level)
		body := toastTitleStyle.Foreground(color).Render(levelIcon(t.level) + " " + t.title)
		if t.description != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, toastDescriptionStyle.Render(t.description))
		}
		rendered = append(rendered, toastStyle.BorderForeground(color).Render(body))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}
