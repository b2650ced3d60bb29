package obligation

import (
	"regexp"
	"unicode/utf8"

	"github.com/legalens/legalens/internal/model"
)

const ambiguityReason = "Vague or subjective term"

// context window captured on each side of a vague term, in bytes
const ambiguityContextWindow = 50

// AmbiguityScanner flags vague or subjective contract language. Each regex
// class emits one finding per match occurrence; overlapping matches from
// different classes are all kept.
type AmbiguityScanner struct {
	patterns []*regexp.Regexp
}

// NewAmbiguityScanner compiles the ambiguity pattern table
func NewAmbiguityScanner(rules model.RulesConfig) *AmbiguityScanner {
	patterns := make([]*regexp.Regexp, 0, len(rules.AmbiguityPatterns))
	for _, p := range rules.AmbiguityPatterns {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+p))
	}
	return &AmbiguityScanner{patterns: patterns}
}

// Scan returns one Ambiguity per match occurrence with a fixed context
// window around the matched phrase
func (s *AmbiguityScanner) Scan(text string) []model.Ambiguity {
	findings := []model.Ambiguity{}

	for _, pattern := range s.patterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start := loc[0] - ambiguityContextWindow
			if start < 0 {
				start = 0
			}
			end := loc[1] + ambiguityContextWindow
			if end > len(text) {
				end = len(text)
			}
			start = runeStart(text, start)
			end = runeStart(text, end)

			findings = append(findings, model.Ambiguity{
				Phrase:   text[loc[0]:loc[1]],
				Context:  text[start:end],
				Position: loc[0],
				Reason:   ambiguityReason,
			})
		}
	}

	return findings
}

// runeStart moves i back to the nearest rune boundary so window cuts
// never split a multi-byte character
func runeStart(text string, i int) int {
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
