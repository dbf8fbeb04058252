package dialog

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Policy decides what happens to a pending request when Confirm is called
// again before it settles.
type Policy string

const (
	// SupersedeReject settles the earlier request with ErrSuperseded.
	SupersedeReject Policy = "reject"
	// SupersedeOrphan drops the earlier request without settling it. Its
	// waiters only return when their context ends.
	SupersedeOrphan Policy = "orphan"
)

// ParsePolicy converts s to a Policy. An empty string selects SupersedeReject.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", SupersedeReject:
		return SupersedeReject, nil
	case SupersedeOrphan:
		return SupersedeOrphan, nil
	default:
		return "", fmt.Errorf("unknown supersede policy %q", s)
	}
}

// State is a snapshot of what a view should display.
type State struct {
	Visible   bool
	Config    Config
	PendingID uint64 // zero when nothing is pending
}

// Confirmer presents a yes/no decision and lets callers await the answer.
// It is safe for concurrent use.
type Confirmer struct {
	mu       sync.Mutex
	defaults Config
	config   Config
	visible  bool
	pending  *Request
	seq      uint64

	policy   Policy
	log      zerolog.Logger
	onChange func(State)
}

// ConfirmerOption configures a Confirmer.
type ConfirmerOption func(*Confirmer)

// WithDefaults sets the configuration the dialog starts from and returns to
// on Reset.
func WithDefaults(cfg Config) ConfirmerOption {
	return func(c *Confirmer) { c.defaults = cfg }
}

func WithSupersedePolicy(p Policy) ConfirmerOption {
	return func(c *Confirmer) { c.policy = p }
}

func WithLogger(l zerolog.Logger) ConfirmerOption {
	return func(c *Confirmer) { c.log = l }
}

// WithOnChange registers fn to be called after every state change. fn is
// invoked without the Confirmer lock held.
func WithOnChange(fn func(State)) ConfirmerOption {
	return func(c *Confirmer) { c.onChange = fn }
}

// New creates a hidden Confirmer showing DefaultConfig unless overridden.
func New(opts ...ConfirmerOption) *Confirmer {
	c := &Confirmer{
		defaults: DefaultConfig(),
		policy:   SupersedeReject,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.config = c.defaults
	return c
}

// SetOnChange replaces the change callback. Views created after the
// Confirmer use this to subscribe.
func (c *Confirmer) SetOnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Confirm merges opts over the current configuration, shows the dialog and
// returns a request that settles when the user answers.
func (c *Confirmer) Confirm(opts ...Option) *Request {
	c.mu.Lock()
	c.config = c.config.Merge(opts...)
	c.visible = true
	c.seq++
	req := newRequest(c.seq, c.config)

	prev := c.pending
	c.pending = req
	state, notify := c.snapshotLocked()
	policy := c.policy
	c.mu.Unlock()

	if prev != nil {
		switch policy {
		case SupersedeOrphan:
			c.log.Warn().Uint64("request", prev.ID()).Msg("pending confirmation orphaned by newer request")
		default:
			prev.settle(false, ErrSuperseded)
			c.log.Debug().Uint64("request", prev.ID()).Msg("pending confirmation superseded")
		}
	}

	c.log.Debug().
		Uint64("request", req.ID()).
		Str("title", req.Config().Title).
		Msg("confirmation requested")

	notify(state)
	return req
}

// HandleConfirm settles the pending request with true and hides the dialog.
func (c *Confirmer) HandleConfirm() {
	c.resolve(true, nil)
}

// HandleCancel settles the pending request with false and hides the dialog.
func (c *Confirmer) HandleCancel() {
	c.resolve(false, nil)
}

// Dismiss settles the pending request with err and hides the dialog. A nil
// err is replaced with ErrDismissed.
func (c *Confirmer) Dismiss(err error) {
	if err == nil {
		err = ErrDismissed
	}
	c.resolve(false, err)
}

func (c *Confirmer) resolve(confirmed bool, err error) {
	c.mu.Lock()
	req := c.pending
	c.pending = nil
	c.visible = false
	state, notify := c.snapshotLocked()
	c.mu.Unlock()

	if req != nil {
		req.settle(confirmed, err)
		c.log.Debug().
			Uint64("request", req.ID()).
			Bool("confirmed", confirmed).
			AnErr("error", err).
			Msg("confirmation settled")
	}

	notify(state)
}

// Reset restores the default configuration. It does not touch visibility
// or the pending request.
func (c *Confirmer) Reset() {
	c.mu.Lock()
	c.config = c.defaults
	state, notify := c.snapshotLocked()
	c.mu.Unlock()
	notify(state)
}

// State returns a snapshot of the dialog.
func (c *Confirmer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, _ := c.snapshotLocked()
	return s
}

// Visible reports whether the dialog is shown.
func (c *Confirmer) Visible() bool {
	return c.State().Visible
}

// Config returns the configuration currently displayed.
func (c *Confirmer) Config() Config {
	return c.State().Config
}

// Pending reports whether a request is waiting for an answer.
func (c *Confirmer) Pending() bool {
	return c.State().PendingID != 0
}

func (c *Confirmer) snapshotLocked() (State, func(State)) {
	s := State{
		Visible: c.visible,
		Config:  c.config,
	}
	if c.pending != nil {
		s.PendingID = c.pending.ID()
	}

	fn := c.onChange
	if fn == nil {
		fn = func(State) {}
	}
	return s, fn
}
