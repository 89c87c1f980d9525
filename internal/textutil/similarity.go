package textutil

import "sort"

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Suggestion is a candidate string ranked by similarity to a query.
type Suggestion struct {
	Index int
	Text  string
	Score float64
}

// Suggest ranks candidates by cosine similarity to query and returns at most
// limit suggestions scoring at least minScore. Equal scores keep candidate order.
func Suggest(query string, candidates []string, limit int, minScore float64) []Suggestion {
	queryFP := NewFingerprint(query)
	if queryFP == nil || limit <= 0 {
		return nil
	}
	var out []Suggestion
	for i, candidate := range candidates {
		score := CosineSimilarity(queryFP, NewFingerprint(candidate))
		if score <= 0 || score < minScore {
			continue
		}
		out = append(out, Suggestion{Index: i, Text: candidate, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
