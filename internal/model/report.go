package model

import "time"

// ExtractionResult is the document-extraction boundary contract. The
// pipeline requires Success and at least 100 characters of text to proceed.
type ExtractionResult struct {
	Success  bool              `json:"success"`
	Text     string            `json:"text"`
	Error    string            `json:"error,omitempty"`
	Metadata map[string]string `json:"metadata"`
	FileName string            `json:"file_name,omitempty"`
	FileType string            `json:"file_type,omitempty"`
}

// LanguageInfo is advisory display metadata; it never feeds clause or risk
// logic
type LanguageInfo struct {
	PrimaryLanguage string  `json:"primary_language"`
	IsMultilingual  bool    `json:"is_multilingual"`
	HasHindi        bool    `json:"has_hindi"`
	HasEnglish      bool    `json:"has_english"`
	Confidence      float64 `json:"confidence"`
}

// Classification is the LLM contract-type result, or its documented
// default when the collaborator is unavailable
type Classification struct {
	ContractType string `json:"contract_type"`
	Confidence   string `json:"confidence"`
	Reasoning    string `json:"reasoning"`
}

// ComplianceCheck wraps the LLM compliance analysis
type ComplianceCheck struct {
	FullAnalysis string    `json:"full_analysis"`
	Timestamp    time.Time `json:"timestamp"`
}

// Party is a contracting party extracted from the document
type Party struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Type string `json:"type"`
}

// DateMention is a date occurrence with surrounding context
type DateMention struct {
	Date    string `json:"date"`
	Format  string `json:"format"`
	Context string `json:"context"`
}

// Amount is a monetary amount occurrence
type Amount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Value    string `json:"value"`
	Context  string `json:"context"`
}

// Duration is a time-period occurrence
type Duration struct {
	Duration string `json:"duration"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
	Context  string `json:"context"`
}

// Jurisdiction is a governing-law or venue mention
type Jurisdiction struct {
	Jurisdiction string `json:"jurisdiction"`
	Type         string `json:"type"`
	Context      string `json:"context"`
}

// Entities collects everything the entity extractor found
type Entities struct {
	Parties       []Party        `json:"parties"`
	Dates         []DateMention  `json:"dates"`
	Amounts       []Amount       `json:"amounts"`
	Durations     []Duration     `json:"durations"`
	Jurisdictions []Jurisdiction `json:"jurisdictions"`
	Emails        []string       `json:"emails"`
	PhoneNumbers  []string       `json:"phone_numbers"`
}

// Report is the complete results bundle for one analysis run. It has no
// persistent identity beyond the run; exports are snapshots.
type Report struct {
	RunID                  string               `json:"run_id"`
	DocumentInfo           ExtractionResult     `json:"document_info"`
	LanguageInfo           LanguageInfo         `json:"language_info"`
	ContractClassification Classification       `json:"contract_classification"`
	LLMSummary             string               `json:"llm_summary"`
	Entities               Entities             `json:"entities"`
	ClauseAnalysis         []ClauseAnalysis     `json:"clause_analysis"`
	ClauseScores           []ClauseRiskScore    `json:"clause_scores"`
	RiskAssessment         RiskAssessment       `json:"risk_assessment"`
	CriticalRisks          []CriticalRisk       `json:"critical_risks"`
	UnfavorableClauses     []UnfavorableClause  `json:"unfavorable_clauses"`
	MitigationStrategies   []MitigationStrategy `json:"mitigation_strategies"`
	NegotiationPoints      []string             `json:"negotiation_points"`
	ComplianceCheck        ComplianceCheck      `json:"compliance_check"`
	Warnings               []string             `json:"warnings,omitempty"`
	Timestamp              time.Time            `json:"timestamp"`
}
