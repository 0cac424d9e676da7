package upload

import (
	"testing"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

func populatedState() State {
	var s State
	s = Apply(s, FileSelected{Slot: SlotRubric, File: FileSlot{Path: "/tmp/r.txt", Name: "r.txt", Size: 10}})
	s = Apply(s, FileSelected{Slot: SlotAssignment, File: FileSlot{Path: "/tmp/a.txt", Name: "a.txt", Size: 20}})
	return s
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name  string
		state func() State
		want  bool
	}{
		{"initial state", func() State { return State{} }, false},
		{"only rubric", func() State {
			return Apply(State{}, FileSelected{Slot: SlotRubric, File: FileSlot{Path: "/tmp/r.txt"}})
		}, false},
		{"only assignment", func() State {
			return Apply(State{}, FileSelected{Slot: SlotAssignment, File: FileSlot{Path: "/tmp/a.txt"}})
		}, false},
		{"both slots idle", populatedState, true},
		{"both slots submitting", func() State {
			return Apply(populatedState(), SubmitStarted{})
		}, false},
		{"both slots succeeded", func() State {
			s := Apply(populatedState(), SubmitStarted{})
			return Apply(s, SubmitSucceeded{Result: &analyze.Result{}})
		}, true},
		{"both slots failed", func() State {
			s := Apply(populatedState(), SubmitStarted{})
			return Apply(s, SubmitFailed{Message: "boom"})
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state().CanSubmit(); got != tt.want {
				t.Errorf("CanSubmit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyFileRejectedKeepsSlot(t *testing.T) {
	s := populatedState()
	before := s.Slots[SlotRubric]

	s = Apply(s, FileRejected{Slot: SlotRubric})

	if s.Slots[SlotRubric] != before {
		t.Errorf("Rejected selection must leave the prior slot value unchanged")
	}
	if s.Slots[SlotAssignment].Path != "/tmp/a.txt" {
		t.Errorf("Rejecting one slot must not clear the other")
	}
	if s.ErrMsg != "rubric file is too large. Please keep files under 5MB." {
		t.Errorf("Unexpected error message: %q", s.ErrMsg)
	}
}

func TestApplyAcceptedSelectionClearsError(t *testing.T) {
	s := Apply(State{}, FileRejected{Slot: SlotAssignment})
	if s.ErrMsg == "" {
		t.Fatal("Expected error message after rejection")
	}

	s = Apply(s, FileSelected{Slot: SlotAssignment, File: FileSlot{Path: "/tmp/a.txt"}})
	if s.ErrMsg != "" {
		t.Errorf("Accepted selection must clear the error, got %q", s.ErrMsg)
	}
}

func TestApplySubmitStartedDiscardsPriorOutcome(t *testing.T) {
	s := Apply(populatedState(), SubmitStarted{})
	s = Apply(s, SubmitSucceeded{Result: &analyze.Result{Score: 42}})

	// Selecting a file afterwards keeps the result visible.
	s = Apply(s, FileSelected{Slot: SlotAssignment, File: FileSlot{Path: "/tmp/b.txt"}})
	if s.Result == nil {
		t.Fatal("Selection must not clear the prior result")
	}

	s = Apply(s, SubmitStarted{})
	if s.Result != nil {
		t.Error("SubmitStarted must discard the prior result")
	}
	if s.Phase != PhaseSubmitting {
		t.Errorf("Expected submitting phase, got %s", s.Phase)
	}
}

func TestApplyResubmitFromFailed(t *testing.T) {
	s := Apply(populatedState(), SubmitStarted{})
	s = Apply(s, SubmitFailed{Message: "network down"})

	if s.Phase != PhaseFailed {
		t.Fatalf("Expected failed phase, got %s", s.Phase)
	}
	if s.ErrMsg != "network down" {
		t.Errorf("Expected failure message, got %q", s.ErrMsg)
	}

	// Re-entrant submission skips Idle.
	s = Apply(s, SubmitStarted{})
	if s.Phase != PhaseSubmitting {
		t.Errorf("Expected submitting phase, got %s", s.Phase)
	}
	if s.ErrMsg != "" {
		t.Errorf("New submission must clear the prior error, got %q", s.ErrMsg)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := populatedState()
	_ = Apply(s, SubmitStarted{})

	if s.Phase != PhaseIdle {
		t.Error("Apply must not mutate its input state")
	}
}

func TestOversizeMessage(t *testing.T) {
	if got := OversizeMessage(SlotRubric); got != "rubric file is too large. Please keep files under 5MB." {
		t.Errorf("Unexpected rubric message: %q", got)
	}
	if got := OversizeMessage(SlotAssignment); got != "assignment file is too large. Please keep files under 5MB." {
		t.Errorf("Unexpected assignment message: %q", got)
	}
}

func TestHintedExtension(t *testing.T) {
	for _, ext := range []string{".pdf", ".doc", ".docx", ".txt", ".PDF"} {
		if !HintedExtension(ext) {
			t.Errorf("Expected %s to be hinted", ext)
		}
	}
	if HintedExtension(".exe") {
		t.Error("Expected .exe to not be hinted")
	}
}
