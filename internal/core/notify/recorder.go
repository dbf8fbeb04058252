package notify

import "sync"

// Call is a single notification captured by Recorder. Method is one of the
// Level values for leveled calls, or "show".
type Call struct {
	Method      string  `json:"method"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Options     Options `json:"options,omitzero"`
}

// MethodShow is the Call.Method recorded for Show.
const MethodShow = "show"

// Recorder captures notifications instead of displaying them.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) Success(title, description string) { r.leveled(LevelSuccess, title, description) }
func (r *Recorder) Error(title, description string)   { r.leveled(LevelError, title, description) }
func (r *Recorder) Warning(title, description string) { r.leveled(LevelWarning, title, description) }
func (r *Recorder) Info(title, description string)    { r.leveled(LevelInfo, title, description) }

func (r *Recorder) Show(opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: MethodShow, Options: opts})
}

func (r *Recorder) leveled(level Level, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: string(level), Title: title, Description: description})
}

// Calls returns a copy of everything recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

var _ Notifier = (*Recorder)(nil)
