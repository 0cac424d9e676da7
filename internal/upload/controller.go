package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/logger"
)

// Controller owns the selected-file state and drives the submission
// lifecycle against the analyze service. It assumes single-threaded event
// dispatch: one in-flight submission at a time, guarded by the phase.
type Controller struct {
	client *analyze.Client
	state  State
	log    *logger.Logger
}

// NewController creates a controller for the given analyze client.
func NewController(client *analyze.Client, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.New("upload", nil)
	}
	return &Controller{client: client, log: log}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// CanSubmit reports whether Submit may be called.
func (c *Controller) CanSubmit() bool {
	return c.state.CanSubmit()
}

// Select validates and stores a file into a slot. Oversized files leave the
// slot unchanged and set the inline error message; the returned error carries
// the same text. Files of exactly the limit are accepted.
func (c *Controller) Select(slot Slot, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return analyze.NewClientErrorWithCause(analyze.ErrTypeValidation,
			fmt.Sprintf("cannot read %s file: %v", slot, err), err)
	}
	if info.IsDir() {
		return analyze.NewClientError(analyze.ErrTypeValidation,
			fmt.Sprintf("%s path is a directory, not a file: %s", slot, path))
	}

	if info.Size() > MaxFileSize {
		c.state = Apply(c.state, FileRejected{Slot: slot})
		return analyze.NewClientError(analyze.ErrTypeValidation, OversizeMessage(slot))
	}

	ext := filepath.Ext(path)
	if !HintedExtension(ext) {
		c.log.Debug("selected %s file with unusual extension %q", slot, ext)
	}

	c.state = Apply(c.state, FileSelected{Slot: slot, File: FileSlot{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		Ext:  ext,
	}})
	return nil
}

// Submit runs one complete submission attempt. The payload is read from disk
// before the request goes out, so re-selecting files mid-flight cannot affect
// a request already in transit. The phase always leaves Submitting, whatever
// the outcome.
func (c *Controller) Submit(ctx context.Context) (*analyze.Result, error) {
	if !c.CanSubmit() {
		return nil, analyze.NewClientError(analyze.ErrTypeValidation,
			"both rubric and assignment files must be selected")
	}

	c.state = Apply(c.state, SubmitStarted{})
	defer func() {
		if c.state.Phase == PhaseSubmitting {
			c.state = Apply(c.state, SubmitFailed{Message: "Analysis failed"})
		}
	}()

	rubric, assignment, err := c.state.ReadDocuments()
	if err != nil {
		c.state = Apply(c.state, SubmitFailed{Message: analyze.FailureMessage(err)})
		return nil, err
	}

	c.log.Debug("submitting %s (%d bytes) and %s (%d bytes)",
		rubric.Name, len(rubric.Content), assignment.Name, len(assignment.Content))

	result, err := c.client.Analyze(ctx, rubric, assignment)
	if err != nil {
		c.state = Apply(c.state, SubmitFailed{Message: analyze.FailureMessage(err)})
		return nil, err
	}

	c.state = Apply(c.state, SubmitSucceeded{Result: result})
	return result, nil
}

// ReadDocuments snapshots both slot files into wire documents.
func (s State) ReadDocuments() (rubric, assignment analyze.Document, err error) {
	for slot, target := range map[Slot]*analyze.Document{
		SlotRubric:     &rubric,
		SlotAssignment: &assignment,
	} {
		file := s.Slots[slot]
		content, readErr := os.ReadFile(file.Path)
		if readErr != nil {
			return analyze.Document{}, analyze.Document{},
				analyze.NewClientErrorWithCause(analyze.ErrTypeTransport,
					fmt.Sprintf("cannot read %s file: %v", slot, readErr), readErr)
		}
		*target = analyze.Document{Name: file.Name, Content: content}
	}
	return rubric, assignment, nil
}
