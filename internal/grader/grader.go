// Package grader scores an assignment against rubric criteria using lexical
// similarity. Each rubric requirement is compared to the full assignment
// text; the combined similarity and keyword coverage decide how many of the
// criterion's points are awarded.
package grader

import (
	"fmt"
	"math"
	"strings"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/logger"
	"github.com/ydemirbas/gradelens/internal/textsim"
)

// Options tunes the scoring thresholds.
type Options struct {
	// MetThreshold is the similarity above which a requirement counts as
	// fully met.
	MetThreshold float32

	// PartialThreshold is the similarity above which a requirement counts
	// as partially met.
	PartialThreshold float32

	// VectorDimensions sizes the vocabulary of the underlying vectorizer.
	VectorDimensions int
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		MetThreshold:     0.85,
		PartialThreshold: 0.65,
		VectorDimensions: 512,
	}
}

// Grader evaluates assignment text against rubric text.
type Grader struct {
	opts Options
	log  *logger.Logger
}

// New creates a Grader. A nil logger gets a default component logger.
func New(opts Options, log *logger.Logger) *Grader {
	if opts.MetThreshold == 0 {
		opts.MetThreshold = DefaultOptions().MetThreshold
	}
	if opts.PartialThreshold == 0 {
		opts.PartialThreshold = DefaultOptions().PartialThreshold
	}
	if opts.VectorDimensions == 0 {
		opts.VectorDimensions = DefaultOptions().VectorDimensions
	}
	if log == nil {
		log = logger.New("grader", nil)
	}
	return &Grader{opts: opts, log: log}
}

// Grade extracts criteria from the rubric and scores the assignment against
// each one. Criteria order in the result follows rubric order.
func (g *Grader) Grade(rubricText, assignmentText string) (*analyze.Result, error) {
	criteria := ExtractCriteria(rubricText)
	if len(criteria) == 0 {
		return nil, fmt.Errorf("no gradable criteria found in rubric")
	}

	g.log.Debug("extracted %d criteria from rubric", len(criteria))

	similarities, err := g.similarities(criteria, assignmentText)
	if err != nil {
		return nil, fmt.Errorf("computing similarities: %w", err)
	}

	assignmentLower := strings.ToLower(assignmentText)

	var totalPoints, earnedPoints float64
	feedback := make([]analyze.RequirementFeedback, 0, len(criteria))
	for i, criterion := range criteria {
		totalPoints += criterion.Points

		eval := g.evaluate(criterion, assignmentLower, similarities[i])
		pointsEarned := criterion.Points * eval.score
		earnedPoints += pointsEarned

		feedback = append(feedback, analyze.RequirementFeedback{
			Requirement:    criterion.Requirement,
			Status:         eval.status,
			PointsEarned:   math.Round(pointsEarned),
			PointsPossible: criterion.Points,
			Feedback:       eval.feedback,
			Suggestions:    eval.suggestions,
		})
	}

	var score float64
	if totalPoints > 0 {
		score = math.Round(earnedPoints/totalPoints*1000) / 10
	}

	g.log.Debug("graded assignment: score=%.1f earned=%.2f total=%.2f", score, earnedPoints, totalPoints)

	return &analyze.Result{
		Score:            score,
		PointsEarned:     math.Round(earnedPoints*100) / 100,
		TotalPoints:      math.Round(totalPoints*100) / 100,
		DetailedFeedback: feedback,
		OverallFeedback:  overallFeedback(feedback),
	}, nil
}

// similarities fits one vectorizer over the requirements plus the assignment
// and compares each requirement vector to the assignment vector.
func (g *Grader) similarities(criteria []Criterion, assignmentText string) ([]float32, error) {
	corpus := make([]string, 0, len(criteria)+1)
	for _, c := range criteria {
		corpus = append(corpus, c.Requirement)
	}
	corpus = append(corpus, assignmentText)

	vectorizer := textsim.NewTFIDFVectorizer(g.opts.VectorDimensions)
	if err := vectorizer.Fit(corpus); err != nil {
		return nil, err
	}

	assignVec, err := vectorizer.Vectorize(assignmentText)
	if err != nil {
		return nil, err
	}

	sims := make([]float32, len(criteria))
	for i, c := range criteria {
		reqVec, err := vectorizer.Vectorize(c.Requirement)
		if err != nil {
			return nil, err
		}
		sims[i] = textsim.CosineSimilarity(reqVec, assignVec)
	}
	return sims, nil
}

type evaluation struct {
	score       float64
	status      analyze.Status
	feedback    string
	suggestions []string
}

// evaluate combines similarity and keyword coverage into a criterion score.
// The fulfillment status follows similarity alone; the awarded fraction is
// the mean of similarity and keyword presence.
func (g *Grader) evaluate(criterion Criterion, assignmentLower string, similarity float32) evaluation {
	var status analyze.Status
	switch {
	case similarity > g.opts.MetThreshold:
		status = analyze.StatusMet
	case similarity > g.opts.PartialThreshold:
		status = analyze.StatusPartiallyMet
	default:
		status = analyze.StatusNotMet
	}

	var keywordPresence float64
	if len(criterion.Keywords) > 0 {
		present := 0
		for _, k := range criterion.Keywords {
			if strings.Contains(assignmentLower, strings.ToLower(k)) {
				present++
			}
		}
		keywordPresence = float64(present) / float64(len(criterion.Keywords))
	}

	feedback, suggestions := criterionFeedback(criterion, status)

	return evaluation{
		score:       (float64(similarity) + keywordPresence) / 2,
		status:      status,
		feedback:    feedback,
		suggestions: suggestions,
	}
}
