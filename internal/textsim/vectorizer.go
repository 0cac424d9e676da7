// Package textsim scores lexical similarity between short texts. A rubric
// requirement and an assignment are projected into the same TF-IDF space and
// compared by cosine similarity.
package textsim

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

const (
	minTermLength = 2
	maxTermLength = 50
)

var (
	nonWordRe  = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	numericRe  = regexp.MustCompile(`^\d+$`)
	defaultSet = buildStopWordSet(
		"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
		"has", "he", "in", "is", "it", "its", "of", "on", "that", "the", "to",
		"was", "will", "with", "this", "but", "they", "have", "had", "what",
		"said", "each", "which", "she", "do", "how", "their", "if", "up",
		"out", "many", "then", "them", "these", "so", "some", "her", "would",
		"make", "like", "him", "into", "time", "two", "more", "go", "no",
		"way", "could", "my", "than", "first", "call", "who", "now", "find",
		"down", "day", "did", "get", "come", "made", "may", "part",
	)
)

func buildStopWordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// TFIDFVectorizer maps text onto fixed-dimension TF-IDF vectors over a
// vocabulary learned from a corpus. Fit before Vectorize.
type TFIDFVectorizer struct {
	mu         sync.RWMutex
	dimensions int
	vocabulary map[string]int
	idf        []float32
	fitted     bool
	stopWords  map[string]bool
}

// NewTFIDFVectorizer creates a vectorizer producing vectors of the given
// dimension.
func NewTFIDFVectorizer(dimensions int) *TFIDFVectorizer {
	stop := make(map[string]bool, len(defaultSet))
	for w := range defaultSet {
		stop[w] = true
	}
	return &TFIDFVectorizer{
		dimensions: dimensions,
		vocabulary: make(map[string]int),
		stopWords:  stop,
	}
}

// Fit learns the vocabulary and inverse document frequencies from the corpus.
// When the corpus holds more distinct terms than the vector has dimensions,
// the most document-frequent terms win, ties broken alphabetically.
func (v *TFIDFVectorizer) Fit(documents []string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(documents) == 0 {
		return fmt.Errorf("cannot fit on empty document corpus")
	}

	v.vocabulary = make(map[string]int)
	v.idf = nil
	v.fitted = false

	docFreq := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, term := range v.terms(doc) {
			seen[term] = true
		}
		for term := range seen {
			docFreq[term]++
		}
	}

	ranked := make([]string, 0, len(docFreq))
	for term := range docFreq {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if docFreq[ranked[i]] != docFreq[ranked[j]] {
			return docFreq[ranked[i]] > docFreq[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > v.dimensions {
		ranked = ranked[:v.dimensions]
	}

	// The +1 inside the log keeps terms that appear in every document from
	// vanishing; the corpora here are only a handful of texts.
	v.idf = make([]float32, len(ranked))
	for i, term := range ranked {
		v.vocabulary[term] = i
		v.idf[i] = float32(math.Log(1 + float64(len(documents))/float64(docFreq[term])))
	}

	v.fitted = true
	return nil
}

// Vectorize projects text into the fitted vocabulary space. Text with no
// recognized terms yields the zero vector.
func (v *TFIDFVectorizer) Vectorize(text string) ([]float32, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.fitted {
		return nil, fmt.Errorf("vectorizer must be fitted before vectorizing")
	}

	vector := make([]float32, v.dimensions)

	counts := make(map[string]int)
	total := 0
	for _, term := range v.terms(text) {
		counts[term]++
		total++
	}
	if total == 0 {
		return vector, nil
	}

	for term, count := range counts {
		if i, ok := v.vocabulary[term]; ok {
			vector[i] = float32(count) / float32(total) * v.idf[i]
		}
	}
	return vector, nil
}

// AddStopWords extends the filtered word set. Call before Fit.
func (v *TFIDFVectorizer) AddStopWords(words []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, w := range words {
		v.stopWords[strings.ToLower(w)] = true
	}
}

// IsFitted reports whether Fit has completed.
func (v *TFIDFVectorizer) IsFitted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fitted
}

// terms lowercases, splits on non-word runes, and drops invalid words.
func (v *TFIDFVectorizer) terms(text string) []string {
	raw := strings.Fields(nonWordRe.ReplaceAllString(strings.ToLower(text), " "))
	terms := raw[:0]
	for _, w := range raw {
		if v.isValidWord(w) {
			terms = append(terms, w)
		}
	}
	return terms
}

// isValidWord filters terms by length, stop words, and pure numbers.
func (v *TFIDFVectorizer) isValidWord(word string) bool {
	if len(word) < minTermLength || len(word) > maxTermLength {
		return false
	}
	if v.stopWords[word] || numericRe.MatchString(word) {
		return false
	}
	return true
}
