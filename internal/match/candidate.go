package match

import (
	"sort"
)

// Candidate is a known name ranked against a name that was not found.
type Candidate struct {
	Name  string
	Score float64 // best of the plain and suffix-stripped similarity (0-1)

	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every name in names against target and returns
// them sorted by score (descending). The target itself is skipped.
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	targetNorm := NormalizeIdent(target)
	targetStripped := NormalizeIdentWithSuffixStrip(target)

	for _, name := range names {
		if name == target {
			continue
		}

		norm := NormalizeIdent(name)

		score := LevenshteinNormalized(norm, targetNorm)
		if stripped := LevenshteinNormalized(NormalizeIdentWithSuffixStrip(name), targetStripped); stripped > score {
			score = stripped
		}

		candidates = append(candidates, Candidate{
			Name:             name,
			Score:            score,
			NormalizedName:   norm,
			NormalizedTarget: targetNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit names from names scoring at least minScore
// against target, best first.
func Suggest(target string, names []string, limit int, minScore float64) []string {
	ranked := RankCandidates(target, names).AboveThreshold(minScore).Top(limit)
	if len(ranked) == 0 {
		return nil
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggestion thresholds.
const (
	// DefaultMinScore is the lowest similarity worth suggesting.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps the number of suggestions per miss.
	DefaultMaxSuggestions = 3
)
