package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

// number of key terms reported per clause
const keyTermCount = 5

var wordRe = regexp.MustCompile(`[a-z]{3,}`)

// Common English words excluded from key-term extraction. Legal
// boilerplate connectives are included so terms reflect the clause's
// subject matter rather than its grammar.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"had": true, "her": true, "was": true, "one": true, "our": true,
	"out": true, "has": true, "have": true, "this": true, "that": true,
	"with": true, "from": true, "they": true, "been": true, "were": true,
	"will": true, "would": true, "there": true, "their": true, "which": true,
	"shall": true, "must": true, "may": true, "upon": true, "under": true,
	"hereby": true, "herein": true, "hereof": true, "thereof": true,
	"whereas": true, "such": true, "other": true, "into": true, "between": true,
	"party": true, "parties": true, "agreement": true, "contract": true,
	"clause": true, "section": true, "pursuant": true, "including": true,
	"without": true, "within": true, "against": true, "either": true,
	"these": true, "those": true, "when": true, "where": true, "during": true,
}

// keyTerms returns the most frequent meaningful words of a clause, most
// frequent first, ties broken by first occurrence
func keyTerms(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	counts := map[string]int{}
	order := map[string]int{}
	for i, w := range words {
		if stopwords[w] {
			continue
		}
		if _, seen := counts[w]; !seen {
			order[w] = i
		}
		counts[w]++
	}

	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return order[terms[i]] < order[terms[j]]
	})

	if len(terms) > keyTermCount {
		terms = terms[:keyTermCount]
	}
	return terms
}

// wordCount counts whitespace-separated tokens
func wordCount(text string) int {
	return len(strings.Fields(text))
}
