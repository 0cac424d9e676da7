package textsim

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns 0 for mismatched lengths or zero-magnitude vectors.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float32
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}

// Similarity fits a throwaway vectorizer on the pair and returns their cosine
// similarity. Convenient when comparing a single requirement against a single
// document without managing vectorizer lifecycle.
func Similarity(a, b string) float32 {
	v := NewTFIDFVectorizer(512)
	if err := v.Fit([]string{a, b}); err != nil {
		return 0
	}
	va, err := v.Vectorize(a)
	if err != nil {
		return 0
	}
	vb, err := v.Vectorize(b)
	if err != nil {
		return 0
	}
	return CosineSimilarity(va, vb)
}
