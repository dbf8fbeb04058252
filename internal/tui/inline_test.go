package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

func TestPromptInline_NothingPending(t *testing.T) {
	err := PromptInline(context.Background(), dialog.New(), InlineOptions{})
	require.ErrorIs(t, err, ErrNothingPending)
}

func TestPromptInline_Accessible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y confirms", input: "y\n", want: true},
		{name: "n cancels", input: "n\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := dialog.New()
			req := c.Confirm(dialog.WithTitle("Rotate keys?"), dialog.WithVariant(dialog.VariantDestructive))

			var out bytes.Buffer
			err := PromptInline(context.Background(), c, InlineOptions{
				Input:      strings.NewReader(tt.input),
				Output:     &out,
				Accessible: true,
			})
			require.NoError(t, err)

			ok, err := settled(t, req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.False(t, c.Visible())
			assert.Contains(t, out.String(), "Rotate keys?")
		})
	}
}
