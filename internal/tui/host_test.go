package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/newsreframer/internal/theme"
)

func newTestHost(t *testing.T, client *fakeClient) *host {
	t.Helper()
	h, ok := NewHost(HostConfig{Client: client}).(*host)
	require.True(t, ok)
	return h
}

func TestHostStartsLight(t *testing.T) {
	h := newTestHost(t, successClient())
	assert.Equal(t, theme.Light, h.mode)
	assert.Equal(t, theme.Light, h.view.theme.Mode)
	assert.Contains(t, h.View(), "ctrl+t")
}

func TestHostToggleFlipsModeAndLeavesViewStateAlone(t *testing.T) {
	h := newTestHost(t, successClient())
	h.view.input.SetValue("wildfires")
	_, submit := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, submit)
	require.Equal(t, requestLoading, h.view.state)

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	h.Update(msgs[0])

	assert.Equal(t, theme.Dark, h.mode)
	assert.Equal(t, theme.Dark, h.view.theme.Mode)
	assert.Equal(t, "wildfires", h.view.input.Value())
	assert.Equal(t, requestLoading, h.view.state, "toggling works while a request is in flight")
	assert.Nil(t, h.view.outcome)

	h.Update(toggleDisplayModeMsg{})
	assert.Equal(t, theme.Light, h.mode)
}

func TestHostSetModeSkipsRebuildWhenUnchanged(t *testing.T) {
	h := newTestHost(t, successClient())
	custom := theme.New(theme.Light)
	custom.Title = custom.Title.Underline(true)
	h.theme = custom

	h.setMode(theme.Light)
	assert.True(t, h.theme.Title.GetUnderline(), "theme should not be recomputed for the same mode")
}

func TestHostForwardsResults(t *testing.T) {
	h := newTestHost(t, successClient())
	h.view.input.SetValue("wildfires")
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settleAll(h, cmd)

	assert.Equal(t, requestIdle, h.view.state)
	assert.Contains(t, h.View(), "Neutral summary")
}
