package risk

import (
	"unicode/utf8"

	"github.com/legalens/legalens/internal/model"
)

// preview length for unfavorable clause text, in bytes
const unfavorablePreviewLen = 200

// Selector flags clauses worth negotiation attention. A clause qualifies
// when it carries at least one HIGH-severity finding, or failing that,
// when its ambiguity count exceeds the threshold. The HIGH rule takes
// precedence: a clause meeting both is reported under it alone.
type Selector struct {
	ambiguityThreshold int
}

// NewSelector creates a selector with the configured ambiguity threshold
func NewSelector(rules model.RulesConfig) *Selector {
	threshold := rules.UnfavorableAmbiguity
	if threshold <= 0 {
		threshold = 2
	}
	return &Selector{ambiguityThreshold: threshold}
}

// Select returns the unfavorable clauses in clause processing order
func (s *Selector) Select(clauses []model.ClauseAnalysis) []model.UnfavorableClause {
	unfavorable := []model.UnfavorableClause{}

	for _, clause := range clauses {
		var highTypes []string
		for _, finding := range clause.Risks {
			if finding.Severity == model.SeverityHigh {
				highTypes = append(highTypes, finding.RiskType)
			}
		}

		switch {
		case len(highTypes) > 0:
			unfavorable = append(unfavorable, model.UnfavorableClause{
				ClauseID:   clause.ClauseID,
				ClauseType: clause.ClauseType,
				Reasons:    highTypes,
				Text:       preview(clause.OriginalText),
				Severity:   "HIGH",
			})
		case len(clause.Ambiguities) > s.ambiguityThreshold:
			unfavorable = append(unfavorable, model.UnfavorableClause{
				ClauseID:   clause.ClauseID,
				ClauseType: clause.ClauseType,
				Reasons:    []string{"Multiple Ambiguous Terms"},
				Text:       preview(clause.OriginalText),
				Severity:   "MEDIUM",
			})
		}
	}

	return unfavorable
}

func preview(text string) string {
	if len(text) <= unfavorablePreviewLen {
		return text
	}
	// back the cut up to a rune boundary so multi-byte text is not split
	cut := unfavorablePreviewLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
