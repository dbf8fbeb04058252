package notify

import (
	"io"
	"os"
	"sync"
)

// Toast is the entry point used by application code. It forwards to the
// attached Notifier when there is one and otherwise writes to the console
// fallback. Whether a notifier is attached is checked on every call, so a
// UI can attach itself after the Toast has been handed out.
type Toast struct {
	mu       sync.RWMutex
	notifier Notifier
	fallback *Console
}

// ToastOption configures a Toast.
type ToastOption func(*Toast)

// WithConsole replaces the default stdout/stderr fallback.
func WithConsole(c *Console) ToastOption {
	return func(t *Toast) { t.fallback = c }
}

// WithStreams sets the fallback output streams.
func WithStreams(out, errOut io.Writer) ToastOption {
	return func(t *Toast) { t.fallback = NewConsole(out, errOut) }
}

// New creates a Toast. A nil n means no notifier is attached.
func New(n Notifier, opts ...ToastOption) *Toast {
	t := &Toast{notifier: n}
	for _, opt := range opts {
		opt(t)
	}
	if t.fallback == nil {
		t.fallback = NewConsole(os.Stdout, os.Stderr)
	}
	return t
}

// Attach sets the notifier used for subsequent calls.
func (t *Toast) Attach(n Notifier) {
	t.mu.Lock()
	t.notifier = n
	t.mu.Unlock()
}

// Detach removes the notifier so calls fall back to the console.
func (t *Toast) Detach() {
	t.Attach(nil)
}

// Attached reports whether a notifier is currently set.
func (t *Toast) Attached() bool {
	return t.current() != nil
}

func (t *Toast) current() Notifier {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notifier
}

func (t *Toast) target() Notifier {
	if n := t.current(); n != nil {
		return n
	}
	return t.fallback
}

func (t *Toast) Success(title, description string) { t.target().Success(title, description) }
func (t *Toast) Error(title, description string)   { t.target().Error(title, description) }
func (t *Toast) Warning(title, description string) { t.target().Warning(title, description) }
func (t *Toast) Info(title, description string)    { t.target().Info(title, description) }

// Show forwards opts to the attached notifier. Without one it does nothing;
// there is no console rendering for free-form toasts.
func (t *Toast) Show(opts Options) {
	if n := t.current(); n != nil {
		n.Show(opts)
	}
}

var _ Notifier = (*Toast)(nil)
