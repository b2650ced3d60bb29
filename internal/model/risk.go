package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the ordinal risk intensity of a finding (LOW < MEDIUM < HIGH)
type Severity int

const (
	SeverityLow    Severity = 1
	SeverityMedium Severity = 2
	SeverityHigh   Severity = 3
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Score returns the numeric weight used by the risk scorer
func (s Severity) Score() float64 {
	return float64(s)
}

// ParseSeverity parses a severity label; unrecognized labels default to MEDIUM
// (LLM responses sometimes carry free-form severity text)
func ParseSeverity(label string) Severity {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "HIGH":
		return SeverityHigh
	case "LOW":
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// MarshalJSON serializes severity as its label so exports stay readable
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts both labels and the numeric ordinal
func (s *Severity) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*s = ParseSeverity(label)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < int(SeverityLow) || n > int(SeverityHigh) {
			return fmt.Errorf("severity out of range: %d", n)
		}
		*s = Severity(n)
		return nil
	}
	return fmt.Errorf("invalid severity: %s", string(data))
}

// Risk categories used for weighting and strategy lookup
const (
	CategoryPenaltyClauses        = "penalty_clauses"
	CategoryIndemnity             = "indemnity"
	CategoryUnilateralTermination = "unilateral_termination"
	CategoryArbitration           = "arbitration"
	CategoryAutoRenewal           = "auto_renewal"
	CategoryNonCompete            = "non_compete"
	CategoryPaymentTerms          = "payment_terms"
	CategoryLiability             = "liability"
	CategoryConfidentiality       = "confidentiality"
	CategoryOther                 = "other"
)

// RiskCategories lists the fixed categories in declaration order, with
// display names. Iteration over this slice keeps report output stable.
var RiskCategories = []struct {
	Key   string
	Label string
}{
	{CategoryPenaltyClauses, "Penalty Clauses"},
	{CategoryIndemnity, "Indemnity Clauses"},
	{CategoryUnilateralTermination, "Unilateral Termination"},
	{CategoryArbitration, "Arbitration & Jurisdiction"},
	{CategoryAutoRenewal, "Auto-Renewal & Lock-in"},
	{CategoryNonCompete, "Non-compete & IP Transfer"},
	{CategoryPaymentTerms, "Payment Terms"},
	{CategoryLiability, "Liability Limitations"},
	{CategoryConfidentiality, "Confidentiality Obligations"},
}

// CategoryLabel returns the display name for a category key
func CategoryLabel(key string) string {
	for _, c := range RiskCategories {
		if c.Key == key {
			return c.Label
		}
	}
	return key
}

// RiskFinding is one detected problematic pattern within a clause
type RiskFinding struct {
	RiskType    string   `json:"risk_type"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// ScoredFinding is a finding placed in the document-level breakdown with
// its weighted score and the clause it came from ("LLM Analysis" for
// findings supplied by the LLM collaborator)
type ScoredFinding struct {
	ClauseID    string   `json:"clause_id"`
	RiskType    string   `json:"risk_type"`
	Severity    Severity `json:"severity"`
	Score       float64  `json:"score"`
	Description string   `json:"description"`
}

// HighPriorityRisk is a HIGH-severity finding flattened across categories
type HighPriorityRisk struct {
	Category    string `json:"category"`
	RiskType    string `json:"risk_type"`
	ClauseID    string `json:"clause_id"`
	Description string `json:"description"`
}

// RiskAssessment is the document-level risk result. It is recomputed
// wholesale on each analysis and owned by a single run.
type RiskAssessment struct {
	OverallScore      float64                    `json:"overall_score"`
	OverallLevel      string                     `json:"overall_level"`
	TotalRisksFound   int                        `json:"total_risks_found"`
	RiskBreakdown     map[string][]ScoredFinding `json:"risk_breakdown"`
	RiskSummary       string                     `json:"risk_summary"`
	HighPriorityRisks []HighPriorityRisk         `json:"high_priority_risks"`
	Recommendation    string                     `json:"recommendation"`
}

// ClauseRiskScore is the per-clause 0-10 risk rollup
type ClauseRiskScore struct {
	ClauseID  string        `json:"clause_id"`
	RiskScore float64       `json:"risk_score"`
	RiskLevel string        `json:"risk_level"`
	RiskCount int           `json:"risk_count"`
	Risks     []RiskFinding `json:"risks,omitempty"`
}

// MitigationStrategy is a negotiation strategy for one affected category
type MitigationStrategy struct {
	RiskCategory    string   `json:"risk_category"`
	AffectedClauses int      `json:"affected_clauses"`
	Strategy        string   `json:"strategy"`
	Actions         []string `json:"actions"`
	Priority        string   `json:"priority"`
}

// CriticalRisk is a HIGH-severity finding from a priority category paired
// with a recommended action
type CriticalRisk struct {
	Category       string `json:"category"`
	RiskType       string `json:"risk_type"`
	ClauseID       string `json:"clause_id"`
	Description    string `json:"description"`
	ActionRequired string `json:"action_required"`
}

// UnfavorableClause marks a clause selected for negotiation attention
type UnfavorableClause struct {
	ClauseID   string   `json:"clause_id"`
	ClauseType string   `json:"clause_type"`
	Reasons    []string `json:"reasons"`
	Text       string   `json:"text"`
	Severity   string   `json:"severity"`
}

// LLMRisk is a risk finding supplied by the LLM collaborator. Its category
// is inferred from the risk type at aggregation time.
type LLMRisk struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
}
