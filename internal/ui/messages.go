package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// Common message types shared across UI models
type submitCompleteMsg struct {
	result *analyze.Result
}

type submitErrorMsg struct {
	err error
}

// CreateSubmitCommand creates a tea command that runs one submission. The
// documents are snapshotted before the command starts, so re-selecting files
// while the request is in flight cannot change the payload.
func CreateSubmitCommand(client *analyze.Client, rubric, assignment analyze.Document) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Analyze(context.Background(), rubric, assignment)
		if err != nil {
			return submitErrorMsg{err: err}
		}
		return submitCompleteMsg{result: result}
	}
}
