package notify

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToast(n Notifier) (*Toast, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(n, WithStreams(&out, &errOut)), &out, &errOut
}

func TestToast_ConsoleFallback(t *testing.T) {
	tests := []struct {
		name       string
		call       func(*Toast)
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "success writes to out",
			call:    func(t *Toast) { t.Success("Saved", "3 files") },
			wantOut: "Toast: Saved 3 files",
		},
		{
			name:       "error writes to err",
			call:       func(t *Toast) { t.Error("Failed", "disk full") },
			wantErrOut: "Error: Failed disk full",
		},
		{
			name:       "warning writes to err",
			call:       func(t *Toast) { t.Warning("Slow", "retrying") },
			wantErrOut: "Warning: Slow retrying",
		},
		{
			name:    "info writes to out",
			call:    func(t *Toast) { t.Info("Heads up", "new version") },
			wantOut: "Info: Heads up new version",
		},
		{
			name:    "description is optional",
			call:    func(t *Toast) { t.Info("Only title", "") },
			wantOut: "Info: Only title\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast, out, errOut := newTestToast(nil)
			tt.call(toast)

			if tt.wantOut == "" {
				assert.Empty(t, out.String())
			} else {
				assert.Contains(t, out.String(), tt.wantOut)
			}

			if tt.wantErrOut == "" {
				assert.Empty(t, errOut.String())
			} else {
				assert.Contains(t, errOut.String(), tt.wantErrOut)
			}
		})
	}
}

func TestToast_ShowWithoutNotifierIsSilent(t *testing.T) {
	toast, out, errOut := newTestToast(nil)

	toast.Show(Options{Title: "hidden", Level: LevelError})

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestToast_ForwardsVerbatim(t *testing.T) {
	rec := &Recorder{}
	toast, out, errOut := newTestToast(rec)

	opts := Options{
		Title:       "Custom",
		Description: "with meta",
		Level:       LevelWarning,
		Duration:    2 * time.Second,
		Meta:        map[string]any{"id": 7},
	}

	toast.Success("a", "1")
	toast.Error("b", "2")
	toast.Warning("c", "3")
	toast.Info("d", "")
	toast.Show(opts)

	want := []Call{
		{Method: "success", Title: "a", Description: "1"},
		{Method: "error", Title: "b", Description: "2"},
		{Method: "warning", Title: "c", Description: "3"},
		{Method: "info", Title: "d", Description: ""},
		{Method: MethodShow, Options: opts},
	}
	assert.Equal(t, want, rec.Calls())
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestToast_AttachIsCheckedPerCall(t *testing.T) {
	toast, out, _ := newTestToast(nil)
	rec := &Recorder{}

	toast.Info("before", "")
	assert.False(t, toast.Attached())

	toast.Attach(rec)
	assert.True(t, toast.Attached())
	toast.Info("during", "")

	toast.Detach()
	toast.Info("after", "")

	assert.Contains(t, out.String(), "Info: before")
	assert.Contains(t, out.String(), "Info: after")
	assert.NotContains(t, out.String(), "during")

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "during", calls[0].Title)
}

func TestSend(t *testing.T) {
	rec := &Recorder{}

	for _, level := range Levels {
		Send(rec, level, string(level), "")
	}
	Send(rec, Level("bogus"), "fallback", "")

	calls := rec.Calls()
	require.Len(t, calls, 5)
	for i, level := range Levels {
		assert.Equal(t, string(level), calls[i].Method)
	}
	assert.Equal(t, "info", calls[4].Method)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "success", want: LevelSuccess},
		{in: "ERROR", want: LevelError},
		{in: "warn", want: LevelWarning},
		{in: "warning", want: LevelWarning},
		{in: "", want: LevelInfo},
		{in: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.Warning("Disk", "80% used")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "warning", entry["toast"])
	assert.Equal(t, "Disk", entry["message"])
	assert.Equal(t, "80% used", entry["description"])
}

func TestLogNotifier_Show(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.Show(Options{Title: "Deploy", Level: LevelError, Meta: map[string]any{"env": "prod"}})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "prod", entry["env"])
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, b}

	m.Success("x", "")
	m.Show(Options{Title: "y"})

	assert.Len(t, a.Calls(), 2)
	assert.Equal(t, a.Calls(), b.Calls())
}
