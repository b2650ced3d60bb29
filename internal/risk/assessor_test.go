package risk

import (
	"math"
	"testing"

	"github.com/legalens/legalens/internal/model"
)

func newTestAssessor() *Assessor {
	return NewAssessor(model.DefaultRules())
}

func clauseWith(id string, findings ...model.RiskFinding) model.ClauseAnalysis {
	return model.ClauseAnalysis{ClauseID: id, Risks: findings}
}

func TestAssessor_EmptyInput(t *testing.T) {
	a := newTestAssessor()

	assessment := a.Assess(nil, nil)

	if assessment.OverallScore != 0 {
		t.Errorf("Expected score 0, got %v", assessment.OverallScore)
	}
	if assessment.OverallLevel != "LOW" {
		t.Errorf("Expected LOW level, got %s", assessment.OverallLevel)
	}
	if assessment.TotalRisksFound != 0 {
		t.Errorf("Expected 0 risks, got %d", assessment.TotalRisksFound)
	}
	if len(assessment.HighPriorityRisks) != 0 {
		t.Errorf("Expected no high priority risks, got %+v", assessment.HighPriorityRisks)
	}
}

func TestAssessor_NormalizedScore(t *testing.T) {
	a := newTestAssessor()

	// Two MEDIUM findings over three clauses:
	// auto_renewal 2*1.3 + payment_terms 2*1.2 = 5.0 total,
	// 5.0/3 * 20 = 33.33 after rounding
	clauses := []model.ClauseAnalysis{
		clauseWith("1.", model.RiskFinding{
			RiskType: "Auto-Renewal", Severity: model.SeverityMedium,
			Category: model.CategoryAutoRenewal,
		}),
		clauseWith("2.", model.RiskFinding{
			RiskType: "Late Payment", Severity: model.SeverityMedium,
			Category: model.CategoryPaymentTerms,
		}),
		clauseWith("3."),
	}

	assessment := a.Assess(clauses, nil)

	if math.Abs(assessment.OverallScore-33.33) > 0.001 {
		t.Errorf("Expected score 33.33, got %v", assessment.OverallScore)
	}
	if assessment.OverallLevel != "LOW" {
		t.Errorf("Expected LOW level, got %s", assessment.OverallLevel)
	}
	if assessment.TotalRisksFound != 2 {
		t.Errorf("Expected 2 risks, got %d", assessment.TotalRisksFound)
	}
}

func TestAssessor_ScoreCappedAt100(t *testing.T) {
	a := newTestAssessor()

	// One clause stacked with HIGH findings blows past the cap:
	// 3*1.8 + 3*1.6 = 10.2 per clause, *20 = 204 before capping
	clauses := []model.ClauseAnalysis{
		clauseWith("1.",
			model.RiskFinding{RiskType: "Unilateral Termination", Severity: model.SeverityHigh, Category: model.CategoryUnilateralTermination},
			model.RiskFinding{RiskType: "Unlimited Liability", Severity: model.SeverityHigh, Category: model.CategoryLiability},
		),
	}

	assessment := a.Assess(clauses, nil)

	if assessment.OverallScore != 100 {
		t.Errorf("Expected capped score 100, got %v", assessment.OverallScore)
	}
	if assessment.OverallLevel != "HIGH" {
		t.Errorf("Expected HIGH level, got %s", assessment.OverallLevel)
	}
}

func TestAssessor_LevelThresholds(t *testing.T) {
	a := newTestAssessor()

	cases := []struct {
		name    string
		finding model.RiskFinding
		level   string
	}{
		{
			// 2*1.0 * 20 = 40, the MEDIUM boundary is inclusive
			name:    "exactly 40 is MEDIUM",
			finding: model.RiskFinding{Severity: model.SeverityMedium, Category: model.CategoryArbitration},
			level:   "MEDIUM",
		},
		{
			// 2*0.8 * 20 = 32
			name:    "below 40 is LOW",
			finding: model.RiskFinding{Severity: model.SeverityMedium, Category: model.CategoryConfidentiality},
			level:   "LOW",
		},
		{
			// 3*1.2 * 20 = 72
			name:    "above 70 is HIGH",
			finding: model.RiskFinding{Severity: model.SeverityHigh, Category: model.CategoryPenaltyClauses},
			level:   "HIGH",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assessment := a.Assess([]model.ClauseAnalysis{clauseWith("1.", tc.finding)}, nil)
			if assessment.OverallLevel != tc.level {
				t.Errorf("Expected level %s for score %v, got %s",
					tc.level, assessment.OverallScore, assessment.OverallLevel)
			}
		})
	}
}

func TestAssessor_MoreFindingsNeverLowerScore(t *testing.T) {
	a := newTestAssessor()

	base := []model.ClauseAnalysis{
		clauseWith("1.", model.RiskFinding{Severity: model.SeverityMedium, Category: model.CategoryPaymentTerms}),
		clauseWith("2."),
	}
	more := []model.ClauseAnalysis{
		base[0],
		clauseWith("2.", model.RiskFinding{Severity: model.SeverityLow, Category: model.CategoryConfidentiality}),
	}

	baseScore := a.Assess(base, nil).OverallScore
	moreScore := a.Assess(more, nil).OverallScore

	if moreScore < baseScore {
		t.Errorf("Adding a finding lowered the score: %v -> %v", baseScore, moreScore)
	}
}

func TestAssessor_UnknownCategoryFallsBackToOther(t *testing.T) {
	a := newTestAssessor()

	clauses := []model.ClauseAnalysis{
		clauseWith("1.", model.RiskFinding{RiskType: "Custom", Severity: model.SeverityMedium, Category: "no_such_category"}),
	}

	assessment := a.Assess(clauses, nil)

	if len(assessment.RiskBreakdown[model.CategoryOther]) != 1 {
		t.Errorf("Expected finding under %q, breakdown: %+v", model.CategoryOther, assessment.RiskBreakdown)
	}
	// Unknown category takes the default weight 1.0: 2*1.0*20 = 40
	if math.Abs(assessment.OverallScore-40) > 0.001 {
		t.Errorf("Expected score 40, got %v", assessment.OverallScore)
	}
}

func TestAssessor_LLMRisksIncluded(t *testing.T) {
	a := newTestAssessor()

	clauses := []model.ClauseAnalysis{clauseWith("1.")}
	llmRisks := []model.LLMRisk{
		{Type: "One-sided termination flexibility", Severity: "HIGH", Description: "Company exits freely"},
	}

	assessment := a.Assess(clauses, llmRisks)

	findings := assessment.RiskBreakdown[model.CategoryUnilateralTermination]
	if len(findings) != 1 {
		t.Fatalf("Expected LLM risk under unilateral_termination, breakdown: %+v", assessment.RiskBreakdown)
	}
	if findings[0].ClauseID != "LLM Analysis" {
		t.Errorf("Expected clause id 'LLM Analysis', got %q", findings[0].ClauseID)
	}
	// 3*1.8 = 5.4 over one clause, *20 = 108, capped at 100
	if assessment.OverallScore != 100 {
		t.Errorf("Expected capped score 100, got %v", assessment.OverallScore)
	}
	if assessment.TotalRisksFound != 1 {
		t.Errorf("Expected 1 risk, got %d", assessment.TotalRisksFound)
	}
}

func TestAssessor_HighPriorityRisks(t *testing.T) {
	a := newTestAssessor()

	clauses := []model.ClauseAnalysis{
		clauseWith("1.",
			model.RiskFinding{RiskType: "Unlimited Liability", Severity: model.SeverityHigh, Category: model.CategoryLiability},
			model.RiskFinding{RiskType: "Late Payment", Severity: model.SeverityMedium, Category: model.CategoryPaymentTerms},
		),
	}

	assessment := a.Assess(clauses, nil)

	if len(assessment.HighPriorityRisks) != 1 {
		t.Fatalf("Expected 1 high priority risk, got %+v", assessment.HighPriorityRisks)
	}
	if assessment.HighPriorityRisks[0].RiskType != "Unlimited Liability" {
		t.Errorf("Expected Unlimited Liability, got %q", assessment.HighPriorityRisks[0].RiskType)
	}
}

func TestAssessor_ScoreClause(t *testing.T) {
	a := newTestAssessor()

	empty := a.ScoreClause(clauseWith("1."))
	if empty.RiskScore != 0 || empty.RiskLevel != "LOW" || empty.RiskCount != 0 {
		t.Errorf("Expected zero score for clean clause, got %+v", empty)
	}

	// 3*1.8 = 5.4 -> MEDIUM band
	medium := a.ScoreClause(clauseWith("2.",
		model.RiskFinding{Severity: model.SeverityHigh, Category: model.CategoryUnilateralTermination},
	))
	if math.Abs(medium.RiskScore-5.4) > 0.001 || medium.RiskLevel != "MEDIUM" {
		t.Errorf("Expected 5.4/MEDIUM, got %+v", medium)
	}

	// 5.4 + 4.8 = 10.2 -> capped at 10, HIGH band
	high := a.ScoreClause(clauseWith("3.",
		model.RiskFinding{Severity: model.SeverityHigh, Category: model.CategoryUnilateralTermination},
		model.RiskFinding{Severity: model.SeverityHigh, Category: model.CategoryLiability},
	))
	if high.RiskScore != 10 || high.RiskLevel != "HIGH" {
		t.Errorf("Expected 10/HIGH, got %+v", high)
	}
	if high.RiskCount != 2 {
		t.Errorf("Expected risk count 2, got %d", high.RiskCount)
	}
}

func TestAssessor_MitigationStrategies(t *testing.T) {
	a := newTestAssessor()

	// liability is MEDIUM, auto_renewal is HIGH; the template table lists
	// liability first, so the sort must move auto_renewal ahead of it
	clauses := []model.ClauseAnalysis{
		clauseWith("1.", model.RiskFinding{Severity: model.SeverityMedium, Category: model.CategoryLiability}),
		clauseWith("2.", model.RiskFinding{Severity: model.SeverityHigh, Category: model.CategoryAutoRenewal}),
	}

	assessment := a.Assess(clauses, nil)
	strategies := a.MitigationStrategies(assessment)

	if len(strategies) != 2 {
		t.Fatalf("Expected 2 strategies, got %+v", strategies)
	}
	if strategies[0].Priority != "HIGH" || strategies[0].RiskCategory != model.CategoryLabel(model.CategoryAutoRenewal) {
		t.Errorf("Expected HIGH auto-renewal strategy first, got %+v", strategies[0])
	}
	if strategies[1].Priority != "MEDIUM" {
		t.Errorf("Expected MEDIUM strategy second, got %+v", strategies[1])
	}
	if strategies[0].AffectedClauses != 1 {
		t.Errorf("Expected 1 affected clause, got %d", strategies[0].AffectedClauses)
	}
	if len(strategies[0].Actions) == 0 {
		t.Error("Expected strategy actions to be populated")
	}
}

func TestAssessor_CriticalRisks(t *testing.T) {
	a := newTestAssessor()

	clauses := []model.ClauseAnalysis{
		clauseWith("1.", model.RiskFinding{RiskType: "Unilateral Termination", Severity: model.SeverityHigh, Category: model.CategoryUnilateralTermination}),
		clauseWith("2.", model.RiskFinding{RiskType: "Late Payment", Severity: model.SeverityMedium, Category: model.CategoryPaymentTerms}),
	}

	assessment := a.Assess(clauses, nil)
	critical := a.CriticalRisks(assessment)

	if len(critical) != 1 {
		t.Fatalf("Expected 1 critical risk, got %+v", critical)
	}
	if critical[0].ClauseID != "1." {
		t.Errorf("Expected clause 1., got %q", critical[0].ClauseID)
	}
	if critical[0].ActionRequired == "" {
		t.Error("Expected a recommended action")
	}
}

func TestCategorizeLLMRisk(t *testing.T) {
	cases := []struct {
		riskType string
		category string
	}{
		{"Payment delay exposure", model.CategoryPaymentTerms},
		{"Early termination right", model.CategoryUnilateralTermination},
		{"Broad indemnification", model.CategoryIndemnity},
		{"Unlimited liability exposure", model.CategoryLiability},
		{"Penalty accumulation", model.CategoryPenaltyClauses},
		{"Non-compete overreach", model.CategoryNonCompete},
		{"Silent renewal", model.CategoryAutoRenewal},
		{"Foreign jurisdiction", model.CategoryArbitration},
		{"Confidentiality breach", model.CategoryConfidentiality},
		{"Regulatory uncertainty", model.CategoryOther},
	}

	for _, tc := range cases {
		if got := CategorizeLLMRisk(tc.riskType); got != tc.category {
			t.Errorf("CategorizeLLMRisk(%q) = %q, want %q", tc.riskType, got, tc.category)
		}
	}
}
