package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/upload"
)

func TestUpdateSubmitComplete(t *testing.T) {
	m := NewModel(nil, upload.State{Phase: upload.PhaseSubmitting})

	result := &analyze.Result{Score: 91}
	updated, _ := m.Update(submitCompleteMsg{result: result})
	model := updated.(*Model)

	if model.state.Phase != upload.PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded", model.state.Phase)
	}
	if model.state.Result != result {
		t.Error("result not stored")
	}
	if model.state.ErrMsg != "" {
		t.Errorf("ErrMsg = %q, want empty", model.state.ErrMsg)
	}
}

func TestUpdateSubmitError(t *testing.T) {
	m := NewModel(nil, upload.State{Phase: upload.PhaseSubmitting})

	err := analyze.NewClientError(analyze.ErrTypeRequest, "Bad rubric format")
	updated, _ := m.Update(submitErrorMsg{err: err})
	model := updated.(*Model)

	if model.state.Phase != upload.PhaseFailed {
		t.Errorf("phase = %v, want failed", model.state.Phase)
	}
	if model.state.ErrMsg != "Bad rubric format" {
		t.Errorf("ErrMsg = %q, want verbatim service message", model.state.ErrMsg)
	}
	if model.state.Result != nil {
		t.Error("result should be nil after failure")
	}
}

func TestUpdateTransportErrorMessage(t *testing.T) {
	m := NewModel(nil, upload.State{Phase: upload.PhaseSubmitting})

	updated, _ := m.Update(submitErrorMsg{err: errors.New("connection refused")})
	model := updated.(*Model)

	if model.state.ErrMsg != "connection refused" {
		t.Errorf("ErrMsg = %q, want underlying transport message", model.state.ErrMsg)
	}
}

func TestSubmitKeyIgnoredWithoutSelection(t *testing.T) {
	m := NewModel(nil, upload.State{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := updated.(*Model)

	if cmd != nil {
		t.Error("expected no command when slots are empty")
	}
	if model.state.Phase != upload.PhaseIdle {
		t.Errorf("phase = %v, want idle", model.state.Phase)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(nil, upload.State{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model := updated.(*Model)

	if !model.quitting {
		t.Error("quitting should be set")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}
