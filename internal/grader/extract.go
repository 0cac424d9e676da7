package grader

import (
	"regexp"
	"strconv"
	"strings"
)

// Criterion is one gradable requirement extracted from a rubric.
type Criterion struct {
	Requirement string
	Points      float64
	Kind        string
	Keywords    []string
}

// DefaultPoints is assigned when a rubric line carries no explicit value.
const DefaultPoints = 10

var pointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*points?`),
	regexp.MustCompile(`(?i)(\d+)\s*marks?`),
	regexp.MustCompile(`(?i)worth\s*(\d+)`),
	regexp.MustCompile(`(?i)value:\s*(\d+)`),
	regexp.MustCompile(`(?i)points:\s*(\d+)`),
}

var requirementIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)must\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)should\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)needs? to\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)required to\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)demonstrate\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)explain\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)analyze\s+(.*?)[.]`),
	regexp.MustCompile(`(?i)discuss\s+(.*?)[.]`),
}

var kindKeywords = []struct {
	kind  string
	words []string
}{
	{"analysis", []string{"analyze", "examine", "evaluate", "assess"}},
	{"implementation", []string{"implement", "create", "develop", "build"}},
	{"understanding", []string{"understand", "explain", "describe", "discuss"}},
	{"demonstration", []string{"demonstrate", "show", "display", "present"}},
}

var conceptStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
}

// ExtractCriteria parses rubric text into criteria. Each non-empty line is a
// section; a section with no recognizable requirement phrase becomes a single
// criterion covering the whole line.
func ExtractCriteria(rubricText string) []Criterion {
	var criteria []Criterion

	for _, line := range strings.Split(rubricText, "\n") {
		section := strings.TrimSpace(line)
		if section == "" {
			continue
		}

		points := extractPoints(section)
		for _, req := range extractRequirements(section) {
			criteria = append(criteria, Criterion{
				Requirement: req,
				Points:      points,
				Kind:        classifyRequirement(req),
				Keywords:    extractKeyConcepts(req),
			})
		}
	}

	return criteria
}

func extractPoints(section string) float64 {
	for _, pattern := range pointPatterns {
		if m := pattern.FindStringSubmatch(section); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return float64(n)
			}
		}
	}
	return DefaultPoints
}

func extractRequirements(section string) []string {
	var requirements []string

	for _, pattern := range requirementIndicators {
		for _, m := range pattern.FindAllStringSubmatch(section, -1) {
			req := strings.TrimSpace(m[1])
			if req != "" {
				requirements = append(requirements, req)
			}
		}
	}

	if len(requirements) == 0 {
		requirements = append(requirements, section)
	}

	return requirements
}

func classifyRequirement(requirement string) string {
	lower := strings.ToLower(requirement)
	for _, k := range kindKeywords {
		for _, word := range k.words {
			if strings.Contains(lower, word) {
				return k.kind
			}
		}
	}
	return "general"
}

// extractKeyConcepts keeps words longer than three characters after dropping
// common stop words.
func extractKeyConcepts(requirement string) []string {
	var concepts []string
	for _, word := range strings.Fields(strings.ToLower(requirement)) {
		if conceptStopWords[word] {
			continue
		}
		if len(word) > 3 {
			concepts = append(concepts, word)
		}
	}
	return concepts
}
