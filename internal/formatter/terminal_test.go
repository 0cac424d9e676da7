package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

func sampleResult() *analyze.Result {
	return &analyze.Result{
		Score: 72.5,
		DetailedFeedback: []analyze.RequirementFeedback{
			{
				Requirement:    "implement a linked list",
				Status:         analyze.StatusMet,
				PointsEarned:   10,
				PointsPossible: 10,
				Feedback:       "Excellent demonstration of implementation requirements.",
				Suggestions:    []string{"Consider adding more examples to strengthen your argument."},
			},
			{
				Requirement:    "discuss time complexity",
				Status:         analyze.StatusPartiallyMet,
				PointsEarned:   5,
				PointsPossible: 10,
				Feedback:       "Basic understanding shown, but needs more depth.",
			},
			{
				Requirement:    "cite three sources",
				Status:         analyze.StatusNotMet,
				PointsEarned:   0,
				PointsPossible: 5,
				Feedback:       "Requirement not adequately addressed.",
			},
		},
		OverallFeedback: analyze.OverallFeedback{
			Strengths:           []string{"implement a linked list"},
			AreasForImprovement: []string{"discuss time complexity", "cite three sources"},
			Summary:             "Out of 3 requirements, 1 were fully met, 1 were partially met, and 1 need improvement.",
		},
	}
}

func TestTerminalFormat_PreservesOrderAndCount(t *testing.T) {
	f := NewTerminal(false)
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	output := string(out)

	first := strings.Index(output, "implement a linked list")
	second := strings.Index(output, "discuss time complexity")
	third := strings.Index(output, "cite three sources")

	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing requirement in output:\n%s", output)
	}
	if !(first < second && second < third) {
		t.Errorf("requirements out of order: %d %d %d", first, second, third)
	}
}

func TestTerminalFormat_PointsVerbatim(t *testing.T) {
	result := sampleResult()
	// Inconsistent values come through untouched.
	result.DetailedFeedback[0].PointsEarned = 12
	result.DetailedFeedback[0].PointsPossible = 10

	f := NewTerminal(false)
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(string(out), "12/10 pts") {
		t.Errorf("expected verbatim points in output:\n%s", out)
	}
}

func TestTerminalFormat_ScoreShown(t *testing.T) {
	f := NewTerminal(false)
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "72.5%") {
		t.Errorf("expected score in output:\n%s", out)
	}
}

func TestTerminalFormat_UnknownStatusNeutral(t *testing.T) {
	result := sampleResult()
	result.DetailedFeedback[1].Status = analyze.StatusUnknown

	f := NewTerminal(false)
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "discuss time complexity") {
		t.Errorf("unknown status entry should still render:\n%s", out)
	}
}

func TestJSONFormat_RoundTrips(t *testing.T) {
	f := NewJSON()
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded analyze.Result
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Score != 72.5 {
		t.Errorf("Score = %v, want 72.5", decoded.Score)
	}
	if len(decoded.DetailedFeedback) != 3 {
		t.Errorf("got %d feedback entries, want 3", len(decoded.DetailedFeedback))
	}
}

func TestMarkdownFormat_Sections(t *testing.T) {
	f := NewMarkdown()
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	output := string(out)
	for _, want := range []string{
		"# Grading Report",
		"## Summary",
		"## Requirements",
		"### 1. implement a linked list",
		"## Overall Feedback",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("missing %q in markdown output", want)
		}
	}
}

func TestCSVFormat_OneRecordPerRequirement(t *testing.T) {
	f := NewCSV()
	out, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 4 {
		t.Errorf("got %d CSV lines, want header plus 3 records:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Requirement,Status,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestNewFormatterSelection(t *testing.T) {
	for _, format := range []string{"terminal", "text", "json", "markdown", "md", "csv", ""} {
		if _, err := New(format, false); err != nil {
			t.Errorf("New(%q) failed: %v", format, err)
		}
	}
	if _, err := New("yaml", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}
