package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
)

// repeatKey feeds the same key press to the program every few
// milliseconds, so a press that lands before the dialog opens is retried.
type repeatKey byte

func (k repeatKey) Read(p []byte) (int, error) {
	time.Sleep(10 * time.Millisecond)
	p[0] = byte(k)
	return 1, nil
}

func runCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func idleInput(t *testing.T) io.Reader {
	t.Helper()
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	return r
}

func TestRun_AnswersFromKeyboard(t *testing.T) {
	tests := []struct {
		name string
		key  repeatKey
		want bool
	}{
		{name: "y confirms", key: 'y', want: true},
		{name: "n cancels", key: 'n', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := dialog.New()

			var (
				got     bool
				waitErr error
			)
			err := Run(runCtx(t), c, RunOptions{Input: tt.key, Output: io.Discard}, func(ctx context.Context, _ *Session) error {
				got, waitErr = c.Confirm(dialog.WithTitle("Proceed?")).Wait(ctx)
				return nil
			})

			require.NoError(t, err)
			require.NoError(t, waitErr)
			assert.Equal(t, tt.want, got)
			assert.False(t, c.Visible())
		})
	}
}

func TestRun_ReturnsWorkError(t *testing.T) {
	boom := errors.New("boom")

	err := Run(runCtx(t), dialog.New(), RunOptions{Input: idleInput(t), Output: io.Discard}, func(context.Context, *Session) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRun_ToastOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	toast := notify.New(nil, notify.WithStreams(&stdout, &stderr))

	start := time.Now()
	err := Run(runCtx(t), dialog.New(), RunOptions{
		Input:  idleInput(t),
		Output: io.Discard,
		Toast:  toast,
		Toasts: NewToasts(100 * time.Millisecond),
	}, func(_ context.Context, s *Session) error {
		s.SetStatus("syncing")
		assert.True(t, toast.Attached())
		notify.Send(toast, notify.LevelSuccess, "Synced", "")
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond, "program stays up until the toast expires")
	assert.False(t, toast.Attached())
	assert.Empty(t, stdout.String(), "toast went to the program, not the console")
}

func TestRun_DismissesPendingOnExit(t *testing.T) {
	c := dialog.New()
	ctx, cancel := context.WithCancel(runCtx(t))

	var waitErr error
	err := Run(ctx, c, RunOptions{Input: idleInput(t), Output: io.Discard}, func(ctx context.Context, _ *Session) error {
		req := c.Confirm()
		cancel()
		_, waitErr = req.Wait(context.Background())
		return nil
	})

	require.NoError(t, err)
	require.ErrorIs(t, waitErr, dialog.ErrDismissed)
}
