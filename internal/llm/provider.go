package llm

import (
	"context"

	"github.com/legalens/legalens/internal/model"
)

// Provider is the low-level completion interface an LLM backend
// implements. The contract-analysis operations live on Advisor, which
// builds prompts and parses responses; providers only move text.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the model's text response
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is the input for a single completion call
type CompletionRequest struct {
	// System is the system prompt framing the assistant's role
	System string

	// Prompt is the user message
	Prompt string

	// Model overrides the configured model for this call
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RateLimit caps requests per second; RateBurst allows short bursts
	RateLimit float64
	RateBurst int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 2000,
		RateLimit: 1,
		RateBurst: 2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
		RateLimit: modelConfig.RateLimit,
		RateBurst: modelConfig.RateBurst,
	}
}
