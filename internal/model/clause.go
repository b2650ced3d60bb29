package model

// ClauseKind tags the segmentation strategy that produced a clause
type ClauseKind string

const (
	ClauseKindNumbered  ClauseKind = "numbered"  // "1.", "1.2." section headings
	ClauseKindLettered  ClauseKind = "lettered"  // "a)", "b)" sub-sections
	ClauseKindParagraph ClauseKind = "paragraph" // blank-line fallback split
)

// Clause is a contiguous span of contract text, the atomic analysis unit.
// Text is immutable after segmentation; Start/End are byte offsets into
// the cleaned document and are used to resolve overlapping candidates.
type Clause struct {
	ID    string     `json:"clause_id"`
	Text  string     `json:"text"`
	Kind  ClauseKind `json:"kind"`
	Start int        `json:"-"`
	End   int        `json:"-"`
}

// ObligationSet groups the sentences of a clause by deontic class.
// A sentence lands in exactly one list; prohibitions take precedence over
// obligations over rights.
type ObligationSet struct {
	Obligations  []string `json:"obligations"`
	Rights       []string `json:"rights"`
	Prohibitions []string `json:"prohibitions"`
}

// Ambiguity flags one occurrence of vague or subjective language
type Ambiguity struct {
	Phrase   string `json:"phrase"`
	Context  string `json:"context"`
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

// ClauseAnalysis is the full per-clause result: type label, deontic
// sentences, risk findings, ambiguity flags, and key terms. Derived fields
// are computed once and never mutated afterward.
type ClauseAnalysis struct {
	ClauseNumber int           `json:"clause_number"`
	ClauseID     string        `json:"clause_id"`
	ClauseType   string        `json:"clause_type"`
	OriginalText string        `json:"original_text"`
	Obligations  ObligationSet `json:"obligations"`
	Risks        []RiskFinding `json:"risks"`
	Ambiguities  []Ambiguity   `json:"ambiguities"`
	KeyTerms     []string      `json:"key_terms"`
	WordCount    int           `json:"word_count"`
}

// Clause type labels assigned by the classifier
const (
	ClauseTypeGeneral = "General Provisions"
)
