package upload

import (
	"fmt"
	"strings"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// MaxFileSize is the per-slot upload limit. Files of exactly this size are
// accepted; the check is strictly greater-than.
const MaxFileSize = 5 * 1024 * 1024

// AcceptedExtensions is a hint shown to the user. It is not enforced by
// content inspection; only the size limit blocks a selection.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// Slot identifies one of the two named upload targets.
type Slot int

const (
	SlotRubric Slot = iota
	SlotAssignment
)

// String returns the human name of the slot.
func (s Slot) String() string {
	switch s {
	case SlotRubric:
		return "rubric"
	case SlotAssignment:
		return "assignment"
	default:
		return "unknown"
	}
}

// FileSlot holds at most one selected file reference.
type FileSlot struct {
	Path string
	Name string
	Size int64
	Ext  string
}

// Populated reports whether a file has been selected into this slot.
func (f FileSlot) Populated() bool {
	return f.Path != ""
}

// Phase is the submission lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the complete controller state. It is a value; transitions go
// through Apply so the machine can be tested without a rendering surface.
type State struct {
	Slots  [2]FileSlot
	Phase  Phase
	Result *analyze.Result
	ErrMsg string
}

// CanSubmit reports whether a submission may start: both slots populated and
// no submission currently in flight.
func (s State) CanSubmit() bool {
	return s.Slots[SlotRubric].Populated() &&
		s.Slots[SlotAssignment].Populated() &&
		s.Phase != PhaseSubmitting
}

// Event is a state machine input.
type Event interface {
	isEvent()
}

// FileSelected stores an accepted file into its slot and clears any error.
type FileSelected struct {
	Slot Slot
	File FileSlot
}

// FileRejected records an oversized selection. The slot keeps its prior
// value; only the error message changes.
type FileRejected struct {
	Slot Slot
}

// SubmitStarted enters Submitting, discarding the prior result and error.
type SubmitStarted struct{}

// SubmitSucceeded delivers a validated result.
type SubmitSucceeded struct {
	Result *analyze.Result
}

// SubmitFailed delivers the failure message for a completed attempt.
type SubmitFailed struct {
	Message string
}

func (FileSelected) isEvent()    {}
func (FileRejected) isEvent()    {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// OversizeMessage is the exact message shown for a rejected selection.
func OversizeMessage(slot Slot) string {
	return fmt.Sprintf("%s file is too large. Please keep files under 5MB.", slot)
}

// Apply is the pure transition function. It never mutates its input.
//
// At most one error message is active at a time; every event that carries a
// new message supersedes the previous one, and an accepted selection clears
// it. A selection while Succeeded or Failed does not clear the prior result;
// only the next SubmitStarted does.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case FileSelected:
		s.Slots[ev.Slot] = ev.File
		s.ErrMsg = ""
	case FileRejected:
		s.ErrMsg = OversizeMessage(ev.Slot)
	case SubmitStarted:
		s.Phase = PhaseSubmitting
		s.Result = nil
		s.ErrMsg = ""
	case SubmitSucceeded:
		s.Phase = PhaseSucceeded
		s.Result = ev.Result
		s.ErrMsg = ""
	case SubmitFailed:
		s.Phase = PhaseFailed
		s.Result = nil
		s.ErrMsg = ev.Message
	}
	return s
}

// HintedExtension reports whether ext is in the accepted-extensions hint.
func HintedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range AcceptedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
