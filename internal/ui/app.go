// Package ui implements the interactive grading view. The model wraps the
// upload state machine; every transition goes through upload.Apply, and the
// view is a pure projection of the resulting state.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/emoji"
	"github.com/ydemirbas/gradelens/internal/upload"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			MarginBottom(1)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginTop(1)
)

// Model is the TUI state. The upload state machine is the single source of
// truth; the model only adds terminal geometry.
type Model struct {
	state    upload.State
	client   *analyze.Client
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a model with files already selected into the state.
func NewModel(client *analyze.Client, state upload.State) *Model {
	return &Model{state: state, client: client}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "s", "enter", "r":
			return m, m.startSubmit()
		}

	case submitCompleteMsg:
		m.state = upload.Apply(m.state, upload.SubmitSucceeded{Result: msg.result})

	case submitErrorMsg:
		m.state = upload.Apply(m.state, upload.SubmitFailed{
			Message: analyze.FailureMessage(msg.err),
		})
	}

	return m, nil
}

// startSubmit snapshots the selected documents and kicks off a submission.
// A no-op while another submission is in flight or slots are missing.
func (m *Model) startSubmit() tea.Cmd {
	if !m.state.CanSubmit() {
		return nil
	}

	rubric, assignment, err := m.state.ReadDocuments()
	if err != nil {
		m.state = upload.Apply(m.state, upload.SubmitStarted{})
		m.state = upload.Apply(m.state, upload.SubmitFailed{
			Message: analyze.FailureMessage(err),
		})
		return nil
	}

	m.state = upload.Apply(m.state, upload.SubmitStarted{})
	return CreateSubmitCommand(m.client, rubric, assignment)
}

// View renders the model
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return "Done.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GradeLens") + "\n")
	m.viewSlots(&b)
	m.viewPhase(&b)

	if m.state.ErrMsg != "" {
		b.WriteString(errorStyle.Render(m.state.ErrMsg) + "\n")
	}

	if m.state.Result != nil {
		m.viewResult(&b, m.state.Result)
	}

	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) viewSlots(b *strings.Builder) {
	for _, slot := range []upload.Slot{upload.SlotRubric, upload.SlotAssignment} {
		file := m.state.Slots[slot]
		if file.Populated() {
			fmt.Fprintf(b, "%s %s: %s (%d bytes)\n",
				emoji.GetEmoji("upload"), slot, slotStyle.Render(file.Name), file.Size)
		} else {
			fmt.Fprintf(b, "%s %s: %s\n",
				emoji.GetEmoji("upload"), slot, slotStyle.Render("not selected"))
		}
	}
	b.WriteString("\n")
}

func (m *Model) viewPhase(b *strings.Builder) {
	switch m.state.Phase {
	case upload.PhaseSubmitting:
		b.WriteString(emoji.GetEmoji("watch") + " Analyzing...\n\n")
	case upload.PhaseSucceeded:
		b.WriteString(emoji.GetEmoji("success") + " Analysis complete\n\n")
	case upload.PhaseFailed:
		b.WriteString(emoji.GetEmoji("error") + " Analysis failed\n\n")
	}
}

func (m *Model) viewResult(b *strings.Builder, result *analyze.Result) {
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %.1f%%", result.Score)) + "\n\n")

	for _, item := range result.DetailedFeedback {
		style := categoryStyle(item.Status.Category())
		fmt.Fprintf(b, "%s %s (%v/%v)\n",
			style.Render("["+item.Status.String()+"]"),
			item.Requirement, item.PointsEarned, item.PointsPossible)
		if item.Feedback != "" {
			fmt.Fprintf(b, "   %s\n", item.Feedback)
		}
	}

	if result.OverallFeedback.Summary != "" {
		b.WriteString("\n" + result.OverallFeedback.Summary + "\n")
	}
}

func (m *Model) helpLine() string {
	if m.state.Phase == upload.PhaseSubmitting {
		return "q: quit"
	}
	if m.state.Phase == upload.PhaseSucceeded || m.state.Phase == upload.PhaseFailed {
		return "r: analyze again • q: quit"
	}
	return "s/enter: analyze • q: quit"
}

// categoryStyle maps a visual category to its lipgloss style.
func categoryStyle(category analyze.Category) lipgloss.Style {
	switch category {
	case analyze.CategoryPositive:
		return positiveStyle
	case analyze.CategoryWarning:
		return warningStyle
	case analyze.CategoryNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

// Run starts the interactive view with the given pre-selected state.
func Run(client *analyze.Client, state upload.State) error {
	model := NewModel(client, state)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
