package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAnswer(t *testing.T) {
	for _, answer := range []bool{true, false} {
		c := New()
		AutoAnswer(c, answer)

		req := c.Confirm(WithTitle("auto"))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		ok, err := req.Wait(ctx)
		cancel()

		require.NoError(t, err)
		assert.Equal(t, answer, ok)
		assert.False(t, c.Visible())
		assert.False(t, c.Pending())
	}
}
