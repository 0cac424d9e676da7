package grader

import (
	"reflect"
	"testing"
)

func TestExtractPoints(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    float64
	}{
		{"points suffix", "Students must explain recursion. (15 points)", 15},
		{"singular point", "Worth 1 point overall", 1},
		{"marks", "Explain the design. 20 marks", 20},
		{"worth prefix", "This section is worth 25", 25},
		{"value label", "value: 30", 30},
		{"points label", "points: 5", 5},
		{"case insensitive", "10 POINTS for this task", 10},
		{"no value defaults", "Students must explain recursion.", DefaultPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPoints(tt.section); got != tt.want {
				t.Errorf("extractPoints(%q) = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

func TestExtractRequirements(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{
			name:    "must indicator",
			section: "Students must implement a linked list.",
			want:    []string{"implement a linked list"},
		},
		{
			name:    "should indicator",
			section: "The report should cover time complexity.",
			want:    []string{"cover time complexity"},
		},
		{
			name:    "needs to",
			section: "The essay needs to cite three sources.",
			want:    []string{"cite three sources"},
		},
		{
			name:    "no indicator falls back to whole line",
			section: "Code quality and readability (10 points)",
			want:    []string{"Code quality and readability (10 points)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractRequirements(tt.section)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractRequirements(%q) = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

func TestClassifyRequirement(t *testing.T) {
	tests := []struct {
		requirement string
		want        string
	}{
		{"analyze the runtime behavior", "analysis"},
		{"implement a hash table", "implementation"},
		{"explain your design choices", "understanding"},
		{"demonstrate the working prototype", "demonstration"},
		{"submit before friday", "general"},
	}

	for _, tt := range tests {
		if got := classifyRequirement(tt.requirement); got != tt.want {
			t.Errorf("classifyRequirement(%q) = %q, want %q", tt.requirement, got, tt.want)
		}
	}
}

func TestExtractKeyConcepts(t *testing.T) {
	got := extractKeyConcepts("implement the sorting algorithm and explain it")
	want := []string{"implement", "sorting", "algorithm", "explain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractKeyConcepts() = %v, want %v", got, want)
	}
}

func TestExtractCriteria(t *testing.T) {
	rubric := "Students must implement a binary search tree. (20 points)\n" +
		"\n" +
		"The writeup should cover time complexity. 10 points\n" +
		"General presentation quality"

	criteria := ExtractCriteria(rubric)
	if len(criteria) != 3 {
		t.Fatalf("got %d criteria, want 3", len(criteria))
	}

	first := criteria[0]
	if first.Requirement != "implement a binary search tree" {
		t.Errorf("first requirement = %q", first.Requirement)
	}
	if first.Points != 20 {
		t.Errorf("first points = %v, want 20", first.Points)
	}
	if first.Kind != "implementation" {
		t.Errorf("first kind = %q, want implementation", first.Kind)
	}

	if criteria[1].Points != 10 {
		t.Errorf("second points = %v, want 10", criteria[1].Points)
	}

	third := criteria[2]
	if third.Requirement != "General presentation quality" {
		t.Errorf("third requirement = %q", third.Requirement)
	}
	if third.Points != DefaultPoints {
		t.Errorf("third points = %v, want default %v", third.Points, float64(DefaultPoints))
	}
}

func TestExtractCriteriaEmptyRubric(t *testing.T) {
	if got := ExtractCriteria("\n\n  \n"); len(got) != 0 {
		t.Errorf("expected no criteria for blank rubric, got %d", len(got))
	}
}
