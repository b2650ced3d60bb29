package obligation

import (
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Extractor classifies clause sentences into obligations, rights, and
// prohibitions, and flags vague language. A sentence lands in exactly one
// list; prohibition keywords are checked first because they are the most
// specific ("shall not" would otherwise match "shall").
type Extractor struct {
	prohibitions []string
	obligations  []string
	rights       []string
	ambiguity    *AmbiguityScanner
}

// NewExtractor creates an extractor over the given keyword sets
func NewExtractor(rules model.RulesConfig) *Extractor {
	return &Extractor{
		prohibitions: rules.ProhibitionKeywords,
		obligations:  rules.ObligationKeywords,
		rights:       rules.RightsKeywords,
		ambiguity:    NewAmbiguityScanner(rules),
	}
}

// Extract splits the clause into sentences and classifies each one.
// Sentences matching no keyword class are discarded.
func (e *Extractor) Extract(text string) model.ObligationSet {
	set := model.ObligationSet{
		Obligations:  []string{},
		Rights:       []string{},
		Prohibitions: []string{},
	}

	for _, sentence := range SplitSentences(text) {
		lower := strings.ToLower(sentence)
		switch {
		case containsAny(lower, e.prohibitions):
			set.Prohibitions = append(set.Prohibitions, sentence)
		case containsAny(lower, e.obligations):
			set.Obligations = append(set.Obligations, sentence)
		case containsAny(lower, e.rights):
			set.Rights = append(set.Rights, sentence)
		}
	}

	return set
}

// DetectAmbiguities scans the clause text for vague or subjective terms
func (e *Extractor) DetectAmbiguities(text string) []model.Ambiguity {
	return e.ambiguity.Scan(text)
}

// SplitSentences splits text on sentence terminators. A terminator only
// ends a sentence when followed by whitespace or end of text, which keeps
// section numbers like "3.1" intact.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			atEnd := i+1 >= len(text)
			if atEnd || text[i+1] == ' ' || text[i+1] == '\t' {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	return sentences
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
