package segment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Segmenter splits raw contract text into an ordered list of clauses.
// Three strategies run in order: numbered sections ("1.", "1.2."), lettered
// sections ("a)"), and a blank-line paragraph fallback. Numbered and
// lettered candidates are both collected; a lettered candidate whose span
// overlaps a numbered clause is dropped so the same text is never emitted
// twice.
type Segmenter struct {
	numberedRe *regexp.Regexp
	letteredRe *regexp.Regexp
	capsLineRe *regexp.Regexp
	minParaLen int
}

// NewSegmenter creates a segmenter using the given rule thresholds
func NewSegmenter(rules model.RulesConfig) *Segmenter {
	minLen := rules.MinParagraphLength
	if minLen <= 0 {
		minLen = 50
	}
	return &Segmenter{
		numberedRe: regexp.MustCompile(`(?m)^(\d+\.(?:\d+\.?)*)\s+`),
		letteredRe: regexp.MustCompile(`(?m)^([a-z]\))\s+`),
		capsLineRe: regexp.MustCompile(`(?m)^[A-Z][A-Z\s]{2,}$`),
		minParaLen: minLen,
	}
}

// Segment produces the ordered clause list for a document. Empty or
// whitespace-only input yields an empty list. The result is deterministic:
// segmenting the same text twice gives identical clauses.
func (s *Segmenter) Segment(text string) []model.Clause {
	if strings.TrimSpace(text) == "" {
		return []model.Clause{}
	}

	numbered := s.splitNumbered(text)
	lettered := s.splitLettered(text)

	clauses := make([]model.Clause, 0, len(numbered)+len(lettered))
	clauses = append(clauses, numbered...)
	for _, lc := range lettered {
		if !overlapsAny(lc, numbered) {
			clauses = append(clauses, lc)
		}
	}

	if len(clauses) > 0 {
		return clauses
	}

	return s.splitParagraphs(text)
}

// splitNumbered captures sections introduced by a decimal numbering token
// at line start. Each section runs until the next numbered token, an
// all-caps heading line, or end of document, and must open with a capital.
func (s *Segmenter) splitNumbered(text string) []model.Clause {
	matches := s.numberedRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	var clauses []model.Clause
	for i, m := range matches {
		bodyStart := m[1] // after the numbering token and spacing
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if capsIdx := s.capsLineRe.FindStringIndex(text[bodyStart:end]); capsIdx != nil {
			end = bodyStart + capsIdx[0]
		}

		body := strings.TrimSpace(text[bodyStart:end])
		if body == "" || !startsUpper(body) {
			continue
		}

		clauses = append(clauses, model.Clause{
			ID:    strings.TrimSpace(text[m[2]:m[3]]),
			Text:  body,
			Kind:  model.ClauseKindNumbered,
			Start: m[0],
			End:   end,
		})
	}
	return clauses
}

// splitLettered captures sections introduced by "a)"-style tokens, bounded
// by the next lettered token, a numbered token, or end of document
func (s *Segmenter) splitLettered(text string) []model.Clause {
	matches := s.letteredRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	var clauses []model.Clause
	for i, m := range matches {
		bodyStart := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if numIdx := s.numberedRe.FindStringIndex(text[bodyStart:end]); numIdx != nil {
			end = bodyStart + numIdx[0]
		}

		body := strings.TrimSpace(text[bodyStart:end])
		if body == "" {
			continue
		}

		clauses = append(clauses, model.Clause{
			ID:    strings.TrimSpace(text[m[2]:m[3]]),
			Text:  body,
			Kind:  model.ClauseKindLettered,
			Start: m[0],
			End:   end,
		})
	}
	return clauses
}

// splitParagraphs is the fallback: blank-line separated paragraphs of at
// least minParaLen characters, with sequential "P1", "P2", ... ids
func (s *Segmenter) splitParagraphs(text string) []model.Clause {
	clauses := []model.Clause{}
	offset := 0
	n := 0
	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(para)
		if len(trimmed) >= s.minParaLen {
			n++
			clauses = append(clauses, model.Clause{
				ID:    "P" + strconv.Itoa(n),
				Text:  trimmed,
				Kind:  model.ClauseKindParagraph,
				Start: offset,
				End:   offset + len(para),
			})
		}
		offset += len(para) + 2
	}
	return clauses
}

// overlapsAny reports whether the clause span intersects any clause in the
// list
func overlapsAny(c model.Clause, others []model.Clause) bool {
	for _, o := range others {
		if c.Start < o.End && o.Start < c.End {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}
