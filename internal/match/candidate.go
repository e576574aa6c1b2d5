package match

import (
	"reflect"
	"sort"
)

// Field is a named, optionally typed, property known to a resolver.
type Field struct {
	Name string
	Type reflect.Type
}

// Candidate represents a known property that might be the one a caller meant.
type Candidate struct {
	Field Field

	// Scoring components
	NameScore  float64                 // Normalized Levenshtein similarity (0-1)
	TypeCompat TypeCompatibilityResult // Zero unless both types are known

	// Combined score for ranking (higher is better)
	CombinedScore float64

	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates ranks known fields against an unknown target.
// When the target carries a type, type compatibility weighs into the score;
// otherwise the ranking is by name alone.
// Returns candidates sorted by combined score (descending).
func RankCandidates(target Field, fields []Field) CandidateList {
	candidates := make(CandidateList, 0, len(fields))

	for _, field := range fields {
		cand := Candidate{
			Field:      field,
			NameScore:  NameScore(field.Name, target.Name),
			Normalized: NormalizeIdent(field.Name),
		}

		if target.Type != nil {
			cand.TypeCompat = ScorePointerCompatibility(target.Type, field.Type)
			cand.CombinedScore = calculateCombinedScore(cand.NameScore, cand.TypeCompat.Compatibility)
		} else {
			cand.CombinedScore = cand.NameScore
		}

		candidates = append(candidates, cand)
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultSuggestions names close enough to name
// to be offered as "did you mean" hints.
func Suggest(name string, names []string) []string {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Field{Name: n}
	}

	return RankCandidates(Field{Name: name}, fields).
		AboveThreshold(DefaultSuggestScore).
		Top(DefaultSuggestions).
		Names()
}

// calculateCombinedScore computes a combined score from name similarity and type compatibility.
// Weights:
//   - Name similarity: 60% (0.0-0.6)
//   - Type compatibility: 40% (0.0-0.4)
func calculateCombinedScore(nameScore float64, typeCompat TypeCompatibility) float64 {
	const (
		nameWeight = 0.6
		typeWeight = 0.4
	)

	var typeScore float64
	switch typeCompat {
	case TypeIdentical:
		typeScore = 1.0
	case TypeAssignable:
		typeScore = 0.9
	case TypeConvertible:
		typeScore = 0.7
	case TypeNeedsTransform:
		typeScore = 0.4
	case TypeIncompatible:
		typeScore = 0.0
	}

	return nameScore*nameWeight + typeScore*typeWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by field name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Field.Name < c[j].Field.Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
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

// Names returns the candidate names in ranking order.
func (c CandidateList) Names() []string {
	if len(c) == 0 {
		return nil
	}

	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Field.Name
	}

	return names
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].CombinedScore-c[1].CombinedScore < threshold
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.CombinedScore < minScore {
		return nil
	}

	// typed rankings must at least be reachable through a converter
	if best.TypeCompat.TargetType != "" && best.TypeCompat.Compatibility < TypeNeedsTransform {
		return nil
	}

	if len(c) > 1 && c[0].CombinedScore-c[1].CombinedScore < minGap {
		return nil
	}

	return best
}

const (
	// DefaultMinScore is the minimum combined score for auto-acceptance.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum score gap between top candidates.
	DefaultMinGap = 0.15
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
	// DefaultSuggestScore is the minimum score for a name to be suggested.
	DefaultSuggestScore = 0.6
	// DefaultSuggestions is the number of names Suggest returns at most.
	DefaultSuggestions = 3
)
