package risk

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Assessor combines per-clause findings and optional LLM-derived findings
// into the document-level risk assessment. The normalized score divides by
// clause count, not finding count: a document segmented into fewer, larger
// clauses concentrates more risk per clause and scores higher.
type Assessor struct {
	weights   map[string]float64
	templates []model.StrategyTemplate
}

// NewAssessor creates an assessor over the given weight table and strategy
// templates
func NewAssessor(rules model.RulesConfig) *Assessor {
	return &Assessor{
		weights:   rules.CategoryWeights,
		templates: rules.StrategyTemplates,
	}
}

// categoryKeys returns the fixed categories plus "other", in declaration
// order, so breakdown iteration stays stable
func categoryKeys() []string {
	keys := make([]string, 0, len(model.RiskCategories)+1)
	for _, c := range model.RiskCategories {
		keys = append(keys, c.Key)
	}
	return append(keys, model.CategoryOther)
}

// Assess recomputes the whole RiskAssessment from scratch. Empty input is
// a valid outcome: score 0, level LOW, no findings.
func (a *Assessor) Assess(clauses []model.ClauseAnalysis, llmRisks []model.LLMRisk) model.RiskAssessment {
	breakdown := make(map[string][]model.ScoredFinding, len(model.RiskCategories)+1)
	for _, key := range categoryKeys() {
		breakdown[key] = []model.ScoredFinding{}
	}

	totalScore := 0.0
	clauseCount := len(clauses)

	for _, clause := range clauses {
		for _, finding := range clause.Risks {
			category := finding.Category
			if _, ok := breakdown[category]; !ok {
				category = model.CategoryOther
			}

			score := finding.Severity.Score() * a.weight(category)
			totalScore += score

			breakdown[category] = append(breakdown[category], model.ScoredFinding{
				ClauseID:    clause.ClauseID,
				RiskType:    finding.RiskType,
				Severity:    finding.Severity,
				Score:       score,
				Description: finding.Description,
			})
		}
	}

	for _, risk := range llmRisks {
		severity := model.ParseSeverity(risk.Severity)
		category := CategorizeLLMRisk(risk.Type)

		score := severity.Score() * a.weight(category)
		totalScore += score

		breakdown[category] = append(breakdown[category], model.ScoredFinding{
			ClauseID:    "LLM Analysis",
			RiskType:    risk.Type,
			Severity:    severity,
			Score:       score,
			Description: risk.Description,
		})
	}

	normalized := 0.0
	if clauseCount > 0 {
		avgPerClause := totalScore / float64(clauseCount)
		normalized = math.Min(100, avgPerClause*20)
	}
	normalized = math.Round(normalized*100) / 100

	level := riskLevel(normalized)

	totalRisks := 0
	for _, findings := range breakdown {
		totalRisks += len(findings)
	}

	return model.RiskAssessment{
		OverallScore:      normalized,
		OverallLevel:      level,
		TotalRisksFound:   totalRisks,
		RiskBreakdown:     breakdown,
		RiskSummary:       summarize(breakdown, level),
		HighPriorityRisks: highPriorityRisks(breakdown),
		Recommendation:    recommendation(level),
	}
}

// ScoreClause rolls a single clause's findings into a 0-10 score
func (a *Assessor) ScoreClause(clause model.ClauseAnalysis) model.ClauseRiskScore {
	if len(clause.Risks) == 0 {
		return model.ClauseRiskScore{
			ClauseID:  clause.ClauseID,
			RiskScore: 0,
			RiskLevel: "LOW",
			RiskCount: 0,
		}
	}

	total := 0.0
	for _, finding := range clause.Risks {
		category := finding.Category
		if _, known := a.weights[category]; !known && category != model.CategoryOther {
			category = model.CategoryOther
		}
		total += finding.Severity.Score() * a.weight(category)
	}

	score := math.Min(10, total)
	score = math.Round(score*100) / 100

	level := "LOW"
	if score >= 7 {
		level = "HIGH"
	} else if score >= 4 {
		level = "MEDIUM"
	}

	return model.ClauseRiskScore{
		ClauseID:  clause.ClauseID,
		RiskScore: score,
		RiskLevel: level,
		RiskCount: len(clause.Risks),
		Risks:     clause.Risks,
	}
}

// MitigationStrategies builds one strategy per affected category that has
// a template, priority HIGH when any finding in the category is HIGH.
// HIGH strategies sort before MEDIUM; the sort is stable otherwise.
func (a *Assessor) MitigationStrategies(assessment model.RiskAssessment) []model.MitigationStrategy {
	strategies := []model.MitigationStrategy{}

	for _, template := range a.templates {
		findings := assessment.RiskBreakdown[template.Category]
		if len(findings) == 0 {
			continue
		}

		priority := "MEDIUM"
		for _, f := range findings {
			if f.Severity == model.SeverityHigh {
				priority = "HIGH"
				break
			}
		}

		strategies = append(strategies, model.MitigationStrategy{
			RiskCategory:    model.CategoryLabel(template.Category),
			AffectedClauses: len(findings),
			Strategy:        template.Strategy,
			Actions:         template.Actions,
			Priority:        priority,
		})
	}

	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].Priority == "HIGH" && strategies[j].Priority != "HIGH"
	})

	return strategies
}

// priority categories scanned for critical risks, most damaging first
var priorityCategories = []string{
	model.CategoryUnilateralTermination,
	model.CategoryIndemnity,
	model.CategoryLiability,
	model.CategoryNonCompete,
	model.CategoryPenaltyClauses,
}

var criticalActions = map[string]string{
	model.CategoryUnilateralTermination: "Negotiate for mutual termination rights or require cause",
	model.CategoryIndemnity:             "Request liability cap and scope limitation",
	model.CategoryLiability:             "Add maximum liability cap",
	model.CategoryPenaltyClauses:        "Negotiate lower penalty amounts",
	model.CategoryNonCompete:            "Narrow geographic and time scope",
	model.CategoryAutoRenewal:           "Request opt-in renewal or longer notice",
	model.CategoryPaymentTerms:          "Negotiate milestone-based payments",
}

// CriticalRisks lists the HIGH-severity findings from priority categories
// paired with recommended actions
func (a *Assessor) CriticalRisks(assessment model.RiskAssessment) []model.CriticalRisk {
	critical := []model.CriticalRisk{}

	for _, category := range priorityCategories {
		for _, finding := range assessment.RiskBreakdown[category] {
			if finding.Severity != model.SeverityHigh {
				continue
			}
			action, ok := criticalActions[category]
			if !ok {
				action = "Review and negotiate this clause"
			}
			critical = append(critical, model.CriticalRisk{
				Category:       model.CategoryLabel(category),
				RiskType:       finding.RiskType,
				ClauseID:       finding.ClauseID,
				Description:    finding.Description,
				ActionRequired: action,
			})
		}
	}

	return critical
}

func (a *Assessor) weight(category string) float64 {
	if w, ok := a.weights[category]; ok {
		return w
	}
	return 1.0
}

// CategorizeLLMRisk maps a free-form LLM risk type onto the fixed category
// set by keyword matching, defaulting to "other"
func CategorizeLLMRisk(riskType string) string {
	lower := strings.ToLower(riskType)

	switch {
	case strings.Contains(lower, "payment") || strings.Contains(lower, "fee"):
		return model.CategoryPaymentTerms
	case strings.Contains(lower, "terminat"):
		return model.CategoryUnilateralTermination
	case strings.Contains(lower, "indemnit") || strings.Contains(lower, "indemnif"):
		return model.CategoryIndemnity
	case strings.Contains(lower, "liability") || strings.Contains(lower, "liable"):
		return model.CategoryLiability
	case strings.Contains(lower, "penalt"):
		return model.CategoryPenaltyClauses
	case strings.Contains(lower, "compete"):
		return model.CategoryNonCompete
	case strings.Contains(lower, "renew"):
		return model.CategoryAutoRenewal
	case strings.Contains(lower, "arbitration") || strings.Contains(lower, "jurisdiction"):
		return model.CategoryArbitration
	case strings.Contains(lower, "confidential"):
		return model.CategoryConfidentiality
	default:
		return model.CategoryOther
	}
}

func riskLevel(score float64) string {
	switch {
	case score >= 70:
		return "HIGH"
	case score >= 40:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func highPriorityRisks(breakdown map[string][]model.ScoredFinding) []model.HighPriorityRisk {
	high := []model.HighPriorityRisk{}
	for _, category := range categoryKeys() {
		for _, finding := range breakdown[category] {
			if finding.Severity == model.SeverityHigh {
				high = append(high, model.HighPriorityRisk{
					Category:    model.CategoryLabel(category),
					RiskType:    finding.RiskType,
					ClauseID:    finding.ClauseID,
					Description: finding.Description,
				})
			}
		}
	}
	return high
}

func summarize(breakdown map[string][]model.ScoredFinding, level string) string {
	total := 0
	counts := map[model.Severity]int{}
	for _, findings := range breakdown {
		total += len(findings)
		for _, f := range findings {
			counts[f.Severity]++
		}
	}

	if total == 0 {
		return "No significant risks identified in this contract."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall Risk Level: %s\n\n", level)
	fmt.Fprintf(&b, "Total Risks Identified: %d\n", total)
	fmt.Fprintf(&b, "- High Severity: %d\n", counts[model.SeverityHigh])
	fmt.Fprintf(&b, "- Medium Severity: %d\n", counts[model.SeverityMedium])
	fmt.Fprintf(&b, "- Low Severity: %d\n", counts[model.SeverityLow])

	type catCount struct {
		key   string
		count int
	}
	var top []catCount
	for _, key := range categoryKeys() {
		if n := len(breakdown[key]); n > 0 {
			top = append(top, catCount{key, n})
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].count > top[j].count })
	if len(top) > 3 {
		top = top[:3]
	}

	if len(top) > 0 {
		b.WriteString("\nMain Risk Areas:\n")
		for _, c := range top {
			fmt.Fprintf(&b, "- %s: %d issue(s)\n", model.CategoryLabel(c.key), c.count)
		}
	}

	return b.String()
}

func recommendation(level string) string {
	switch level {
	case "HIGH":
		return "HIGH RISK: This contract contains significant risks. " +
			"We strongly recommend consulting with a legal professional before signing. " +
			"Consider negotiating the high-risk clauses identified."
	case "MEDIUM":
		return "MEDIUM RISK: This contract has some concerning clauses. " +
			"Review the identified risks carefully and consider negotiating terms. " +
			"Legal consultation is recommended for complex issues."
	default:
		return "LOW RISK: This contract appears relatively balanced. " +
			"Review the summary and specific clauses, but major concerns are minimal. " +
			"Standard business review should be sufficient."
	}
}
