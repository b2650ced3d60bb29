package model

import "time"

// Config is the full runtime configuration. Rule tables are loaded once at
// startup and injected into each component; nothing mutates them after
// construction, so analyses may run concurrently against the same Config.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Audit       AuditConfig       `yaml:"audit"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Rules       RulesConfig       `yaml:"rules"`
}

// LLMConfig configures the optional LLM collaborator
type LLMConfig struct {
	Provider  string  `yaml:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string  `yaml:"model"`
	APIKey    string  `yaml:"-"` // from env only, never persisted
	BaseURL   string  `yaml:"base_url"`
	Timeout   int     `yaml:"timeout_seconds"`
	MaxTokens int     `yaml:"max_tokens"`
	RateLimit float64 `yaml:"rate_limit"` // requests per second
	RateBurst int     `yaml:"rate_burst"`
}

// CacheConfig configures the analysis result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// AuditConfig configures the append-only audit log
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// ConcurrencyConfig controls batch analysis
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// ClauseTypeKeywords binds one clause type to its keyword list. Declaration
// order is the classifier tie-break order.
type ClauseTypeKeywords struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

// RiskPattern is one entry of the risk detector catalog
type RiskPattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Severity    string `yaml:"severity"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// StrategyTemplate is the fixed mitigation template for one risk category
type StrategyTemplate struct {
	Category string   `yaml:"category"`
	Strategy string   `yaml:"strategy"`
	Actions  []string `yaml:"actions"`
}

// RulesConfig holds every keyword/pattern table the deterministic core
// uses. Tests swap tables here instead of patching globals.
type RulesConfig struct {
	ClauseKeywords       []ClauseTypeKeywords `yaml:"clause_keywords"`
	RiskPatterns         []RiskPattern        `yaml:"risk_patterns"`
	CategoryWeights      map[string]float64   `yaml:"category_weights"`
	AmbiguityPatterns    []string             `yaml:"ambiguity_patterns"`
	ObligationKeywords   []string             `yaml:"obligation_keywords"`
	RightsKeywords       []string             `yaml:"rights_keywords"`
	ProhibitionKeywords  []string             `yaml:"prohibition_keywords"`
	StrategyTemplates    []StrategyTemplate   `yaml:"strategy_templates"`
	MinParagraphLength   int                  `yaml:"min_paragraph_length"`
	MinDocumentLength    int                  `yaml:"min_document_length"`
	UnfavorableAmbiguity int                  `yaml:"unfavorable_ambiguity_threshold"`
}

// DefaultConfig returns the standard configuration and rule tables
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 2000,
			RateLimit: 1,
			RateBurst: 2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.legalens/cache at startup
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "", // resolved to ~/.legalens/audit.db at startup
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Rules: DefaultRules(),
	}
}

// DefaultRules returns the built-in keyword and pattern tables
func DefaultRules() RulesConfig {
	return RulesConfig{
		ClauseKeywords: []ClauseTypeKeywords{
			{Type: "Payment Terms", Keywords: []string{
				"payment", "fee", "compensation", "remuneration", "salary",
				"invoice", "due", "price", "cost", "charge",
			}},
			{Type: "Termination", Keywords: []string{
				"terminate", "termination", "cancel", "cancellation", "end",
				"expire", "cessation", "dissolve", "dissolution",
			}},
			{Type: "Indemnity", Keywords: []string{
				"indemnify", "indemnification", "hold harmless", "defend",
				"protect", "compensate for loss",
			}},
			{Type: "Confidentiality", Keywords: []string{
				"confidential", "secret", "proprietary", "non-disclosure",
				"nda", "confidentiality",
			}},
			{Type: "Intellectual Property", Keywords: []string{
				"intellectual property", "copyright", "patent", "trademark",
				"ip rights", "ownership", "proprietary rights",
			}},
			{Type: "Liability", Keywords: []string{
				"liability", "liable", "responsible", "responsibility",
				"damages", "accountable",
			}},
			{Type: "Dispute Resolution", Keywords: []string{
				"dispute", "arbitration", "mediation", "litigation",
				"court", "jurisdiction", "governing law",
			}},
			{Type: "Force Majeure", Keywords: []string{
				"force majeure", "act of god", "unforeseeable",
				"beyond control", "natural disaster",
			}},
			{Type: "Warranties", Keywords: []string{
				"warrant", "warranty", "guarantee", "represent",
				"representation", "assure", "certification",
			}},
			{Type: "Non-compete", Keywords: []string{
				"non-compete", "non-competition", "restrictive covenant",
				"compete", "competitive",
			}},
			{Type: "Auto-Renewal", Keywords: []string{
				"auto-renew", "automatic renewal", "automatically renew",
				"extend", "extension",
			}},
			{Type: "Lock-in Period", Keywords: []string{
				"lock-in", "lock in period", "minimum term",
				"committed period",
			}},
		},
		RiskPatterns: []RiskPattern{
			{
				Name:        "Unlimited Liability",
				Pattern:     `\b(?:unlimited|without\s+limit|no\s+cap|uncapped)(?:\s+[a-z]+){0,2}\s+(?:liability|damages|obligation)|liabilit(?:y|ies)(?:\s+[a-z]+){0,3}\s+(?:unlimited|uncapped|without\s+limit)`,
				Severity:    "HIGH",
				Category:    CategoryLiability,
				Description: "Clause contains unlimited liability language",
			},
			{
				Name:        "Harsh Penalties",
				Pattern:     `\b(?:penalty|liquidated\s+damages|forfeit|fine)\b`,
				Severity:    "MEDIUM",
				Category:    CategoryPenaltyClauses,
				Description: "Clause contains harsh penalties language",
			},
			{
				Name:        "Unilateral Termination",
				Pattern:     `\b(?:may|can|shall)\s+terminate(?:\s+[a-z]+){0,2}\s+(?:at|with)\s+(?:any\s+time|will|(?:its\s+)?(?:sole\s+)?discretion)`,
				Severity:    "HIGH",
				Category:    CategoryUnilateralTermination,
				Description: "Clause contains unilateral termination language",
			},
			{
				Name:        "Auto-Renewal",
				Pattern:     `\b(?:automatically|auto)\s+(?:renew|extend|continue)`,
				Severity:    "MEDIUM",
				Category:    CategoryAutoRenewal,
				Description: "Clause contains auto-renewal language",
			},
			{
				Name:        "Broad Indemnity",
				Pattern:     `\bindemnify\s+(?:and\s+hold\s+harmless|from\s+(?:any|all))`,
				Severity:    "HIGH",
				Category:    CategoryIndemnity,
				Description: "Clause contains broad indemnity language",
			},
			{
				Name:        "IP Transfer",
				Pattern:     `\b(?:transfer|assign|convey)\s+(?:all|any)?\s*(?:intellectual\s+property|ip|copyright|patent)`,
				Severity:    "HIGH",
				Category:    CategoryNonCompete,
				Description: "Clause contains ip transfer language",
			},
			{
				Name:        "Non-Compete",
				Pattern:     `\bnon-compete|restrictive\s+covenant|not\s+compete`,
				Severity:    "MEDIUM",
				Category:    CategoryNonCompete,
				Description: "Clause contains non-compete language",
			},
			{
				Name:        "Late Payment",
				Pattern:     `\b(?:interest|penalty|charge)\s+(?:on|for)\s+(?:late|delayed|overdue)\s+payment`,
				Severity:    "MEDIUM",
				Category:    CategoryPaymentTerms,
				Description: "Clause contains late payment language",
			},
			{
				Name:        "Jurisdiction Issues",
				Pattern:     `\b(?:exclusive|sole)\s+jurisdiction`,
				Severity:    "MEDIUM",
				Category:    CategoryArbitration,
				Description: "Clause contains jurisdiction issues language",
			},
			{
				Name:        "Liability Limitation",
				Pattern:     `\b(?:not|no|limited)\s+(?:liable|responsibility|obligation)`,
				Severity:    "MEDIUM",
				Category:    CategoryLiability,
				Description: "Clause contains liability limitation language",
			},
		},
		CategoryWeights: map[string]float64{
			CategoryPenaltyClauses:        1.2,
			CategoryIndemnity:             1.5,
			CategoryUnilateralTermination: 1.8,
			CategoryArbitration:           1.0,
			CategoryAutoRenewal:           1.3,
			CategoryNonCompete:            1.4,
			CategoryPaymentTerms:          1.2,
			CategoryLiability:             1.6,
			CategoryConfidentiality:       0.8,
		},
		AmbiguityPatterns: []string{
			`\b(?:reasonable|appropriate|suitable|adequate|sufficient|substantial)\b`,
			`\b(?:may|might|could|should|would)\b`,
			`\b(?:approximately|about|around|roughly|nearly)\b`,
			`\b(?:promptly|timely|soon|expeditiously)\b`,
			`\b(?:best\s+efforts|reasonable\s+efforts)\b`,
			`\b(?:material|significant|substantial)\b`,
		},
		ObligationKeywords:  []string{"shall", "must", "will", "agrees to", "required to", "obligated to"},
		RightsKeywords:      []string{"may", "entitled to", "has the right", "permitted to", "can"},
		ProhibitionKeywords: []string{"shall not", "must not", "prohibited", "forbidden", "may not"},
		StrategyTemplates: []StrategyTemplate{
			{
				Category: CategoryUnilateralTermination,
				Strategy: "Negotiate for mutual termination rights or require specific cause",
				Actions: []string{
					"Request 60-90 days notice period",
					"Define specific termination causes",
					"Add termination fee for early exit",
				},
			},
			{
				Category: CategoryIndemnity,
				Strategy: "Limit indemnification scope and cap liability",
				Actions: []string{
					"Cap indemnity at contract value",
					"Exclude indirect/consequential damages",
					"Add mutual indemnification clause",
				},
			},
			{
				Category: CategoryLiability,
				Strategy: "Add liability caps and exclusions",
				Actions: []string{
					"Cap total liability at 2x contract value",
					"Exclude force majeure events",
					"Define scope of liability clearly",
				},
			},
			{
				Category: CategoryPenaltyClauses,
				Strategy: "Negotiate reasonable penalty amounts",
				Actions: []string{
					"Cap penalties at specific percentage",
					"Allow cure period before penalties apply",
					"Make penalties proportionate to breach",
				},
			},
			{
				Category: CategoryAutoRenewal,
				Strategy: "Add opt-in renewal or longer notice period",
				Actions: []string{
					"Change to opt-in renewal",
					"Require 90-day advance notice",
					"Allow price renegotiation at renewal",
				},
			},
			{
				Category: CategoryNonCompete,
				Strategy: "Narrow scope and duration of restrictions",
				Actions: []string{
					"Limit to specific geography",
					"Reduce duration to 1 year",
					"Define restricted activities specifically",
				},
			},
		},
		MinParagraphLength:   50,
		MinDocumentLength:    100,
		UnfavorableAmbiguity: 2,
	}
}
