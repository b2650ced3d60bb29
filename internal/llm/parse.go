package llm

import (
	"strings"

	"github.com/legalens/legalens/internal/model"
)

// Responses are parsed line-by-line against the formats the prompts ask
// for. Models do not always comply; anything unparseable falls back to a
// neutral value rather than failing the analysis.

func parseClassification(response string) model.Classification {
	result := model.Classification{
		ContractType: "General Contract",
		Confidence:   "Medium",
	}

	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.HasPrefix(line, "Contract Type:"):
			result.ContractType = strings.TrimSpace(strings.TrimPrefix(line, "Contract Type:"))
		case strings.HasPrefix(line, "Confidence:"):
			result.Confidence = strings.TrimSpace(strings.TrimPrefix(line, "Confidence:"))
		case strings.HasPrefix(line, "Reasoning:"):
			result.Reasoning = strings.TrimSpace(strings.TrimPrefix(line, "Reasoning:"))
		}
	}

	return result
}

func parseRisks(response string) []model.LLMRisk {
	risks := []model.LLMRisk{}

	for _, block := range strings.Split(response, "---") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var risk model.LLMRisk
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "RISK:"):
				risk.Type = strings.TrimSpace(strings.TrimPrefix(line, "RISK:"))
			case strings.HasPrefix(line, "SEVERITY:"):
				risk.Severity = strings.TrimSpace(strings.TrimPrefix(line, "SEVERITY:"))
			case strings.HasPrefix(line, "DESCRIPTION:"):
				risk.Description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
			case strings.HasPrefix(line, "IMPACT:"):
				risk.Impact = strings.TrimSpace(strings.TrimPrefix(line, "IMPACT:"))
			}
		}

		if risk.Type != "" {
			risks = append(risks, risk)
		}
	}

	return risks
}

func parseNegotiationPoints(response string) []string {
	points := []string{}

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed[0] >= '0' && trimmed[0] <= '9' || strings.HasPrefix(trimmed, "-") {
			points = append(points, trimmed)
		}
	}

	return points
}
