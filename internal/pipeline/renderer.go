package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Renderer writes analysis reports as JSON and Markdown
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the complete report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	content := r.markdown(report)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to w
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "\nContract: %s (%s)\n", report.DocumentInfo.FileName, report.ContractClassification.ContractType)
	fmt.Fprintf(w, "Risk Score: %.2f/100 (%s)\n", report.RiskAssessment.OverallScore, report.RiskAssessment.OverallLevel)
	fmt.Fprintf(w, "Clauses Analyzed: %d\n", len(report.ClauseAnalysis))
	fmt.Fprintf(w, "Risks Found: %d\n", report.RiskAssessment.TotalRisksFound)
	fmt.Fprintf(w, "Unfavorable Clauses: %d\n", len(report.UnfavorableClauses))

	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

func (r *Renderer) markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contract Analysis Report\n\n")
	fmt.Fprintf(&b, "- **File:** %s (%s)\n", report.DocumentInfo.FileName, report.DocumentInfo.FileType)
	fmt.Fprintf(&b, "- **Contract Type:** %s (confidence: %s)\n",
		report.ContractClassification.ContractType, report.ContractClassification.Confidence)
	fmt.Fprintf(&b, "- **Run:** %s\n", report.RunID)
	fmt.Fprintf(&b, "- **Analyzed:** %s\n", report.Timestamp.Format("2006-01-02 15:04 MST"))
	if report.LanguageInfo.IsMultilingual {
		fmt.Fprintf(&b, "- **Language:** %s (multilingual document)\n", report.LanguageInfo.PrimaryLanguage)
	} else {
		fmt.Fprintf(&b, "- **Language:** %s\n", report.LanguageInfo.PrimaryLanguage)
	}
	b.WriteString("\n")

	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(report.LLMSummary)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## Risk Assessment\n\n")
	fmt.Fprintf(&b, "**Overall Risk: %.2f/100 (%s)**\n\n", report.RiskAssessment.OverallScore, report.RiskAssessment.OverallLevel)
	b.WriteString(report.RiskAssessment.RiskSummary)
	b.WriteString("\n")
	fmt.Fprintf(&b, "\n> %s\n\n", report.RiskAssessment.Recommendation)

	if len(report.RiskAssessment.HighPriorityRisks) > 0 {
		b.WriteString("### High-Priority Risks\n\n")
		for _, risk := range report.RiskAssessment.HighPriorityRisks {
			fmt.Fprintf(&b, "- **%s** (%s, clause %s): %s\n", risk.RiskType, risk.Category, risk.ClauseID, risk.Description)
		}
		b.WriteString("\n")
	}

	if len(report.CriticalRisks) > 0 {
		b.WriteString("### Critical Risks\n\n")
		for _, risk := range report.CriticalRisks {
			fmt.Fprintf(&b, "- **%s** (clause %s): %s\n", risk.RiskType, risk.ClauseID, risk.Description)
			fmt.Fprintf(&b, "  - Action: %s\n", risk.ActionRequired)
		}
		b.WriteString("\n")
	}

	if len(report.UnfavorableClauses) > 0 {
		b.WriteString("## Unfavorable Clauses\n\n")
		for _, clause := range report.UnfavorableClauses {
			fmt.Fprintf(&b, "### Clause %s — %s (%s)\n\n", clause.ClauseID, clause.ClauseType, clause.Severity)
			fmt.Fprintf(&b, "Reasons: %s\n\n", strings.Join(clause.Reasons, ", "))
			fmt.Fprintf(&b, "> %s\n\n", clause.Text)
		}
	}

	if len(report.MitigationStrategies) > 0 {
		b.WriteString("## Mitigation Strategies\n\n")
		for _, s := range report.MitigationStrategies {
			fmt.Fprintf(&b, "### %s (%s priority, %d clause(s) affected)\n\n", s.RiskCategory, s.Priority, s.AffectedClauses)
			fmt.Fprintf(&b, "%s\n\n", s.Strategy)
			for _, action := range s.Actions {
				fmt.Fprintf(&b, "- %s\n", action)
			}
			b.WriteString("\n")
		}
	}

	if len(report.NegotiationPoints) > 0 {
		b.WriteString("## Negotiation Points\n\n")
		for _, point := range report.NegotiationPoints {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Clause Analysis\n\n")
	for i, clause := range report.ClauseAnalysis {
		fmt.Fprintf(&b, "### %d. Clause %s — %s\n\n", clause.ClauseNumber, clause.ClauseID, clause.ClauseType)
		if i < len(report.ClauseScores) {
			score := report.ClauseScores[i]
			fmt.Fprintf(&b, "Risk: %.1f/10 (%s) | ", score.RiskScore, score.RiskLevel)
		}
		fmt.Fprintf(&b, "Words: %d", clause.WordCount)
		if len(clause.KeyTerms) > 0 {
			fmt.Fprintf(&b, " | Key terms: %s", strings.Join(clause.KeyTerms, ", "))
		}
		b.WriteString("\n\n")

		if len(clause.Risks) > 0 {
			for _, risk := range clause.Risks {
				fmt.Fprintf(&b, "- Risk: **%s** (%s) — %s\n", risk.RiskType, risk.Severity, risk.Description)
			}
			b.WriteString("\n")
		}
		if n := len(clause.Ambiguities); n > 0 {
			fmt.Fprintf(&b, "- Ambiguous terms: %d\n\n", n)
		}
	}

	if len(report.Entities.Parties) > 0 || len(report.Entities.Amounts) > 0 || len(report.Entities.Jurisdictions) > 0 {
		b.WriteString("## Extracted Details\n\n")
		for _, p := range report.Entities.Parties {
			fmt.Fprintf(&b, "- Party: %s (%s)\n", p.Name, p.Role)
		}
		for _, amt := range report.Entities.Amounts {
			fmt.Fprintf(&b, "- Amount: %s\n", amt.Amount)
		}
		for _, d := range report.Entities.Durations {
			fmt.Fprintf(&b, "- Duration: %s\n", d.Duration)
		}
		for _, j := range report.Entities.Jurisdictions {
			fmt.Fprintf(&b, "- Jurisdiction: %s\n", j.Jurisdiction)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Compliance Review\n\n")
	b.WriteString(report.ComplianceCheck.FullAnalysis)
	b.WriteString("\n")

	if r.includeFooter {
		b.WriteString("\n---\n\n")
		b.WriteString("*This report is generated by automated analysis and is not legal advice. ")
		b.WriteString("Consult a qualified legal professional before signing any contract.*\n")
	}

	return b.String()
}
