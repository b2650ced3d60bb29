package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/legalens/legalens/internal/model"
)

// Advisor runs the contract-analysis operations over a Provider. Every
// operation degrades gracefully: when the provider is missing or a call
// fails, the advisor returns a documented neutral default and the
// deterministic pipeline result stands on its own.
type Advisor struct {
	provider Provider
	limiter  *rate.Limiter
	verbose  bool
}

// NewAdvisor wraps a provider. A nil provider produces an advisor whose
// every operation returns defaults; callers never need to branch.
func NewAdvisor(provider Provider, config Config, verbose bool) *Advisor {
	limit := rate.Limit(config.RateLimit)
	if config.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := config.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Advisor{
		provider: provider,
		limiter:  rate.NewLimiter(limit, burst),
		verbose:  verbose,
	}
}

// Enabled reports whether a provider is configured
func (a *Advisor) Enabled() bool {
	return a.provider != nil
}

// ClassifyContractType asks the LLM for the contract type. Default:
// General Contract with Low confidence.
func (a *Advisor) ClassifyContractType(ctx context.Context, text string) model.Classification {
	fallback := model.Classification{
		ContractType: "General Contract",
		Confidence:   "Low",
		Reasoning:    "LLM unavailable",
	}

	response, err := a.complete(ctx, "classify", classifyPrompt(text))
	if err != nil {
		return fallback
	}
	return parseClassification(response)
}

// GenerateSummary asks the LLM for a plain-language summary
func (a *Advisor) GenerateSummary(ctx context.Context, text, contractType string) string {
	response, err := a.complete(ctx, "summary", summaryPrompt(text, contractType))
	if err != nil {
		return "Summary unavailable: configure an LLM provider to generate plain-language summaries."
	}
	return response
}

// IdentifyRisks asks the LLM for risks the pattern catalog cannot see.
// Default: no additional risks.
func (a *Advisor) IdentifyRisks(ctx context.Context, text, contractType string) []model.LLMRisk {
	response, err := a.complete(ctx, "risks", risksPrompt(text, contractType))
	if err != nil {
		return []model.LLMRisk{}
	}
	return parseRisks(response)
}

// CheckCompliance asks the LLM for an Indian-law compliance review
func (a *Advisor) CheckCompliance(ctx context.Context, text, contractType string) model.ComplianceCheck {
	response, err := a.complete(ctx, "compliance", compliancePrompt(text, contractType))
	if err != nil {
		response = "Compliance check unavailable: configure an LLM provider for Indian-law review."
	}
	return model.ComplianceCheck{
		FullAnalysis: response,
		Timestamp:    time.Now(),
	}
}

// GenerateNegotiationPoints asks the LLM for talking points on the
// unfavorable clauses. Default: empty list. Called only when there is
// something to negotiate.
func (a *Advisor) GenerateNegotiationPoints(ctx context.Context, clauses []model.UnfavorableClause) []string {
	if len(clauses) == 0 {
		return []string{}
	}

	response, err := a.complete(ctx, "negotiation", negotiationPrompt(clauses))
	if err != nil {
		return []string{}
	}
	return parseNegotiationPoints(response)
}

func (a *Advisor) complete(ctx context.Context, op, prompt string) (string, error) {
	if a.provider == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	response, err := a.provider.Complete(ctx, CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		if a.verbose {
			fmt.Fprintf(os.Stderr, "LLM %s call failed: %v\n", op, err)
		}
		return "", err
	}
	return response, nil
}
