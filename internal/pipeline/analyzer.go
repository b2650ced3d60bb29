package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/legalens/legalens/internal/audit"
	"github.com/legalens/legalens/internal/cache"
	"github.com/legalens/legalens/internal/classify"
	"github.com/legalens/legalens/internal/document"
	"github.com/legalens/legalens/internal/entity"
	"github.com/legalens/legalens/internal/lang"
	"github.com/legalens/legalens/internal/llm"
	"github.com/legalens/legalens/internal/model"
	"github.com/legalens/legalens/internal/obligation"
	"github.com/legalens/legalens/internal/risk"
	"github.com/legalens/legalens/internal/segment"
)

// Analyzer orchestrates the complete contract analysis: extraction,
// language detection, entity extraction, clause analysis, risk
// assessment, and the optional LLM collaboration. The deterministic
// core never depends on an LLM response.
type Analyzer struct {
	extractor   *document.Extractor
	segmenter   *segment.Segmenter
	classifier  *classify.Classifier
	obligations *obligation.Extractor
	detector    *risk.Detector
	assessor    *risk.Assessor
	selector    *risk.Selector
	entities    *entity.Extractor
	advisor     *llm.Advisor
	cache       cache.Cache
	auditLog    *audit.Logger
	config      *model.Config
}

// NewAnalyzer creates an analyzer from configuration. A failed LLM or
// audit setup degrades to a warning; analysis itself must always work.
func NewAnalyzer(cfg *model.Config) *Analyzer {
	var advisor *llm.Advisor
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		}
		advisor = llm.NewAdvisor(provider, llm.ConfigFromModel(cfg.LLM), cfg.Output.Verbose)
	} else {
		advisor = llm.NewAdvisor(nil, llm.ConfigFromModel(cfg.LLM), cfg.Output.Verbose)
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled && cfg.Cache.Dir != "" {
		resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var auditLog *audit.Logger
	if cfg.Audit.Enabled && cfg.Audit.Path != "" {
		var err error
		auditLog, err = audit.Open(cfg.Audit.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open audit log: %v\n", err)
		}
	}

	rules := cfg.Rules

	return &Analyzer{
		extractor:   document.NewExtractor(),
		segmenter:   segment.NewSegmenter(rules),
		classifier:  classify.NewClassifier(rules),
		obligations: obligation.NewExtractor(rules),
		detector:    risk.NewDetector(rules),
		assessor:    risk.NewAssessor(rules),
		selector:    risk.NewSelector(rules),
		entities:    entity.NewExtractor(),
		advisor:     advisor,
		cache:       resultCache,
		auditLog:    auditLog,
		config:      cfg,
	}
}

// Close releases held resources
func (a *Analyzer) Close() error {
	return a.auditLog.Close()
}

// AnalyzeFile runs the full analysis on one contract file
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	extraction := a.extractor.Process(path)
	if !extraction.Success {
		return nil, fmt.Errorf("extract document: %s", extraction.Error)
	}

	text := lang.Normalize(extraction.Text)
	if len(text) < a.config.Rules.MinDocumentLength {
		return nil, fmt.Errorf("document too short to analyze: %d characters (minimum %d)",
			len(text), a.config.Rules.MinDocumentLength)
	}

	key := cache.Key(text)
	if a.cache != nil {
		if data, found := a.cache.Get(key); found {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				if a.config.Output.Verbose {
					fmt.Fprintf(os.Stderr, "Cache hit for %s\n", extraction.FileName)
				}
				return &cached, nil
			}
			// Corrupt entry: drop it and recompute
			_ = a.cache.Delete(key)
		}
	}

	report := a.analyze(ctx, text, extraction)

	if a.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := a.cache.Set(key, data, 0); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
			}
		}
	}

	if err := a.auditLog.Record(audit.Entry{
		RunID:        report.RunID,
		FileName:     extraction.FileName,
		ContractType: report.ContractClassification.ContractType,
		RiskLevel:    report.RiskAssessment.OverallLevel,
		RiskScore:    report.RiskAssessment.OverallScore,
		RiskCount:    report.RiskAssessment.TotalRisksFound,
		ClauseCount:  len(report.ClauseAnalysis),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audit write failed: %v\n", err)
	}

	return report, nil
}

// analyze runs the pipeline steps over cleaned text
func (a *Analyzer) analyze(ctx context.Context, text string, extraction model.ExtractionResult) *model.Report {
	var warnings []string

	languageInfo := lang.Detect(text)
	if languageInfo.HasHindi {
		warnings = append(warnings,
			"Hindi content detected: pattern-based analysis covers the English portions only")
	}
	if !a.advisor.Enabled() {
		warnings = append(warnings,
			"LLM analysis disabled: configure a provider for classification, summary and compliance review")
	}

	entities := a.entities.Extract(text)

	clauses := a.segmenter.Segment(text)
	analyses := make([]model.ClauseAnalysis, 0, len(clauses))
	for i, clause := range clauses {
		clauseType := a.classifier.Classify(clause.Text)
		analyses = append(analyses, model.ClauseAnalysis{
			ClauseNumber: i + 1,
			ClauseID:     clause.ID,
			ClauseType:   clauseType,
			OriginalText: clause.Text,
			Obligations:  a.obligations.Extract(clause.Text),
			Risks:        a.detector.Detect(clause.Text, clauseType),
			Ambiguities:  a.obligations.DetectAmbiguities(clause.Text),
			KeyTerms:     keyTerms(clause.Text),
			WordCount:    wordCount(clause.Text),
		})
	}
	if len(analyses) == 0 {
		warnings = append(warnings, "No clauses could be segmented from the document")
	}

	clauseScores := make([]model.ClauseRiskScore, 0, len(analyses))
	for _, analysis := range analyses {
		score := a.assessor.ScoreClause(analysis)
		score.Risks = nil // the findings already live in clause_analysis
		clauseScores = append(clauseScores, score)
	}

	classification := a.advisor.ClassifyContractType(ctx, text)
	summary := a.advisor.GenerateSummary(ctx, text, classification.ContractType)
	llmRisks := a.advisor.IdentifyRisks(ctx, text, classification.ContractType)
	compliance := a.advisor.CheckCompliance(ctx, text, classification.ContractType)

	assessment := a.assessor.Assess(analyses, llmRisks)
	critical := a.assessor.CriticalRisks(assessment)
	unfavorable := a.selector.Select(analyses)
	strategies := a.assessor.MitigationStrategies(assessment)
	points := a.advisor.GenerateNegotiationPoints(ctx, unfavorable)

	return &model.Report{
		RunID:                  uuid.NewString(),
		DocumentInfo:           extraction,
		LanguageInfo:           languageInfo,
		ContractClassification: classification,
		LLMSummary:             summary,
		Entities:               entities,
		ClauseAnalysis:         analyses,
		ClauseScores:           clauseScores,
		RiskAssessment:         assessment,
		CriticalRisks:          critical,
		UnfavorableClauses:     unfavorable,
		MitigationStrategies:   strategies,
		NegotiationPoints:      points,
		ComplianceCheck:        compliance,
		Warnings:               warnings,
		Timestamp:              time.Now().UTC(),
	}
}
