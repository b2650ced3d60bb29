package risk

import (
	"regexp"
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Detector scans clause text against the fixed risk-pattern catalog plus
// clause-type-conditional rules. Findings accumulate: a clause can carry
// any number of findings, including the same risk type from different
// trigger rules, and nothing is suppressed.
type Detector struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	re      *regexp.Regexp
	finding model.RiskFinding
}

// NewDetector compiles the risk-pattern catalog
func NewDetector(rules model.RulesConfig) *Detector {
	patterns := make([]compiledPattern, 0, len(rules.RiskPatterns))
	for _, p := range rules.RiskPatterns {
		patterns = append(patterns, compiledPattern{
			re: regexp.MustCompile(p.Pattern),
			finding: model.RiskFinding{
				RiskType:    p.Name,
				Severity:    model.ParseSeverity(p.Severity),
				Category:    p.Category,
				Description: p.Description,
			},
		})
	}
	return &Detector{patterns: patterns}
}

// Detect returns the risk findings for a clause given its classified type.
// Each catalog pattern contributes at most one finding (first match only);
// the type-conditional rules may add more on top.
func (d *Detector) Detect(text, clauseType string) []model.RiskFinding {
	lower := strings.ToLower(text)

	findings := []model.RiskFinding{}
	for _, p := range d.patterns {
		if p.re.MatchString(lower) {
			findings = append(findings, p.finding)
		}
	}

	switch clauseType {
	case "Termination":
		if strings.Contains(lower, "without cause") || strings.Contains(lower, "at will") {
			findings = append(findings, model.RiskFinding{
				RiskType:    "Termination Without Cause",
				Severity:    model.SeverityHigh,
				Category:    model.CategoryUnilateralTermination,
				Description: "Contract can be terminated without specific cause",
			})
		}
	case "Payment Terms":
		if strings.Contains(lower, "advance") || strings.Contains(lower, "upfront") {
			findings = append(findings, model.RiskFinding{
				RiskType:    "Advance Payment",
				Severity:    model.SeverityMedium,
				Category:    model.CategoryPaymentTerms,
				Description: "Requires advance or upfront payment",
			})
		}
	}

	return findings
}
