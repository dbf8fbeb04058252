package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/nudge/internal/core/notify"
)

func receive(t *testing.T, ch <-chan tea.Msg) toastMsg {
	t.Helper()
	select {
	case msg := <-ch:
		tm, ok := msg.(toastMsg)
		require.True(t, ok)
		return tm
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for toast")
		return toastMsg{}
	}
}

func TestToasts_QueuesUntilBound(t *testing.T) {
	toasts := NewToasts(3 * time.Second)
	toasts.Warning("early", "before bind")

	ch := make(chan tea.Msg, 4)
	toasts.Bind(func(msg tea.Msg) { ch <- msg })

	got := receive(t, ch)
	assert.Equal(t, notify.LevelWarning, got.toast.level)
	assert.Equal(t, "early", got.toast.title)
	assert.Equal(t, "before bind", got.toast.description)
	assert.Equal(t, 3*time.Second, got.toast.duration)
}

func TestToasts_Show(t *testing.T) {
	toasts := NewToasts(time.Second)
	ch := make(chan tea.Msg, 4)
	toasts.Bind(func(msg tea.Msg) { ch <- msg })

	toasts.Show(notify.Options{Title: "custom", Duration: 5 * time.Second})

	got := receive(t, ch)
	assert.Equal(t, notify.LevelInfo, got.toast.level, "empty level defaults to info")
	assert.Equal(t, 5*time.Second, got.toast.duration)
}

func TestToasts_IDsIncrease(t *testing.T) {
	toasts := NewToasts(time.Second)
	ch := make(chan tea.Msg, 4)
	toasts.Bind(func(msg tea.Msg) { ch <- msg })

	toasts.Success("a", "")
	toasts.Error("b", "")

	first, second := receive(t, ch), receive(t, ch)
	ids := []uint64{first.toast.id, second.toast.id}
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestToastStack(t *testing.T) {
	s := toastStack{maxVisible: 2}

	// Added out of order, as concurrent sends may arrive
	s.add(toast{id: 3, title: "three"})
	s.add(toast{id: 1, title: "one"})
	s.add(toast{id: 2, title: "two"})

	visible := s.visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "two", visible[0].title)
	assert.Equal(t, "three", visible[1].title)

	s.remove(3)
	s.remove(42)
	assert.Equal(t, 2, s.len())

	view := s.view(60)
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "two")
}

func TestToastStack_EmptyView(t *testing.T) {
	s := toastStack{}
	assert.Empty(t, s.view(80))
}

func TestToasts_WaitForDelivery(t *testing.T) {
	toasts := NewToasts(time.Second)

	var got []tea.Msg
	release := make(chan struct{})
	toasts.Bind(func(msg tea.Msg) {
		<-release
		got = append(got, msg)
	})

	toasts.Info("one", "")

	waited := make(chan struct{})
	go func() {
		toasts.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned before the toast was delivered")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after delivery")
	}
	assert.Len(t, got, 1)
}
