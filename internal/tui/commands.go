package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/newsreframer/internal/rewrite"
)

type rewriteResultMsg struct {
	outputs rewrite.Outputs
	err     error
}

// toggleDisplayModeMsg asks the host to flip between light and dark.
type toggleDisplayModeMsg struct{}

func toggleDisplayMode() tea.Msg {
	return toggleDisplayModeMsg{}
}

func rewriteJob(client rewrite.Client, topic string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		result, err := client.Rewrite(ctx, topic)
		if err != nil {
			return rewriteResultMsg{err: err}, err
		}
		return rewriteResultMsg{outputs: result.Outputs}, nil
	}
}
