package classify

import (
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Classifier assigns one clause-type label per clause by counting keyword
// hits. The keyword table order doubles as the tie-break order: when two
// types score equally, the earlier declared type wins.
type Classifier struct {
	table []model.ClauseTypeKeywords
}

// NewClassifier creates a classifier over the given keyword table
func NewClassifier(rules model.RulesConfig) *Classifier {
	return &Classifier{table: rules.ClauseKeywords}
}

// Classify returns the clause-type label for the text. Every input maps to
// exactly one label; text matching no keyword is "General Provisions".
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)

	bestType := model.ClauseTypeGeneral
	bestScore := 0

	for _, entry := range c.table {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestType = entry.Type
		}
	}

	return bestType
}

// Types returns the labels the classifier can assign, in declaration order
func (c *Classifier) Types() []string {
	types := make([]string, 0, len(c.table)+1)
	for _, entry := range c.table {
		types = append(types, entry.Type)
	}
	return append(types, model.ClauseTypeGeneral)
}
