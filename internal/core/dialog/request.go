package dialog

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSuperseded settles a pending request that was replaced by a newer
	// call to Confirm.
	ErrSuperseded = errors.New("confirmation superseded by a newer request")

	// ErrDismissed settles a pending request when the dialog is torn down
	// without an answer.
	ErrDismissed = errors.New("confirmation dismissed")
)

// Request is the deferred answer to a single Confirm call. It settles
// exactly once: to true, to false, or to an error.
type Request struct {
	id     uint64
	config Config

	once      sync.Once
	done      chan struct{}
	confirmed bool
	err       error
}

func newRequest(id uint64, cfg Config) *Request {
	return &Request{
		id:     id,
		config: cfg,
		done:   make(chan struct{}),
	}
}

// ID returns the sequence number assigned by the Confirmer.
func (r *Request) ID() uint64 {
	return r.id
}

// Config returns the dialog content the request was shown with.
func (r *Request) Config() Config {
	return r.config
}

// Done returns a channel that is closed once the request settles.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request settles or ctx is done. Context expiry
// does not settle the request; it only stops this caller from waiting.
func (r *Request) Wait(ctx context.Context) (bool, error) {
	select {
	case <-r.done:
		return r.confirmed, r.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Result returns the outcome without blocking. settled is false while the
// request is still pending.
func (r *Request) Result() (confirmed bool, err error, settled bool) {
	select {
	case <-r.done:
		return r.confirmed, r.err, true
	default:
		return false, nil, false
	}
}

// settle records the outcome. It returns false if the request had already
// settled.
func (r *Request) settle(confirmed bool, err error) bool {
	settled := false
	r.once.Do(func() {
		r.confirmed = confirmed
		r.err = err
		close(r.done)
		settled = true
	})
	return settled
}
