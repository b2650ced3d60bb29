package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/legalens/legalens/internal/audit"
	"github.com/legalens/legalens/internal/model"
)

const testContract = `SERVICE AGREEMENT

This agreement is made between Acme Services Pvt Ltd and Sharma Traders, effective 15/04/2024.

1. Payment Terms
The Client shall pay Rs. 50,000 per month. A penalty of Rs. 5,000 applies for late payment, and interest on late payment accrues at 18% per annum.

2. Termination
The Company may terminate this agreement at any time at its sole discretion with reasonable notice to the other party.

3. Governing Law
This agreement shall be governed by the laws of India and the courts of Mumbai shall have exclusive jurisdiction.
`

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false
	return cfg
}

func writeContract(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzer_FullRun(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	defer a.Close()

	report, err := a.AnalyzeFile(context.Background(), writeContract(t, testContract))
	if err != nil {
		t.Fatal(err)
	}

	if report.RunID == "" {
		t.Error("RunID not assigned")
	}
	if report.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}

	// Three numbered clauses
	if len(report.ClauseAnalysis) != 3 {
		t.Fatalf("Expected 3 clauses, got %d: %+v", len(report.ClauseAnalysis), report.ClauseAnalysis)
	}
	if report.ClauseAnalysis[0].ClauseType != "Payment Terms" {
		t.Errorf("Clause 1 type = %q", report.ClauseAnalysis[0].ClauseType)
	}
	if report.ClauseAnalysis[1].ClauseType != "Termination" {
		t.Errorf("Clause 2 type = %q", report.ClauseAnalysis[1].ClauseType)
	}

	// Termination clause carries the unilateral-termination finding
	var foundUnilateral bool
	for _, f := range report.ClauseAnalysis[1].Risks {
		if f.RiskType == "Unilateral Termination" {
			foundUnilateral = true
		}
	}
	if !foundUnilateral {
		t.Errorf("Unilateral Termination not detected: %+v", report.ClauseAnalysis[1].Risks)
	}

	if report.RiskAssessment.OverallScore <= 0 {
		t.Errorf("Expected positive risk score, got %v", report.RiskAssessment.OverallScore)
	}
	if report.RiskAssessment.TotalRisksFound == 0 {
		t.Error("Expected risks in assessment")
	}

	// One clause score per clause, and the HIGH unilateral-termination
	// finding must surface as a critical risk with an action
	if len(report.ClauseScores) != len(report.ClauseAnalysis) {
		t.Fatalf("Expected %d clause scores, got %d", len(report.ClauseAnalysis), len(report.ClauseScores))
	}
	if report.ClauseScores[1].RiskScore <= 0 {
		t.Errorf("Expected positive score for termination clause, got %+v", report.ClauseScores[1])
	}
	var criticalTermination bool
	for _, c := range report.CriticalRisks {
		if c.RiskType == "Unilateral Termination" && c.ActionRequired != "" {
			criticalTermination = true
		}
	}
	if !criticalTermination {
		t.Errorf("Unilateral Termination missing from critical risks: %+v", report.CriticalRisks)
	}

	// The termination clause has a HIGH finding, so it must be flagged
	if len(report.UnfavorableClauses) == 0 {
		t.Fatal("Expected unfavorable clauses")
	}
	if report.UnfavorableClauses[0].Severity != "HIGH" {
		t.Errorf("Expected HIGH unfavorable clause, got %+v", report.UnfavorableClauses[0])
	}

	// Entities from the preamble and clauses
	if len(report.Entities.Parties) == 0 {
		t.Error("Expected parties")
	}
	if len(report.Entities.Amounts) == 0 {
		t.Error("Expected amounts")
	}

	if report.LanguageInfo.PrimaryLanguage != "en" {
		t.Errorf("Expected en, got %q", report.LanguageInfo.PrimaryLanguage)
	}

	// LLM disabled: documented defaults and a warning
	if report.ContractClassification.ContractType != "General Contract" {
		t.Errorf("Expected default classification, got %+v", report.ContractClassification)
	}
	var llmWarning bool
	for _, w := range report.Warnings {
		if strings.Contains(w, "LLM analysis disabled") {
			llmWarning = true
		}
	}
	if !llmWarning {
		t.Errorf("Expected LLM warning, got %v", report.Warnings)
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	defer a.Close()

	path := writeContract(t, testContract)

	r1, err := a.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := a.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if r1.RiskAssessment.OverallScore != r2.RiskAssessment.OverallScore {
		t.Errorf("Scores differ across runs: %v vs %v",
			r1.RiskAssessment.OverallScore, r2.RiskAssessment.OverallScore)
	}
	if len(r1.ClauseAnalysis) != len(r2.ClauseAnalysis) {
		t.Error("Clause counts differ across runs")
	}
}

func TestAnalyzer_RejectsShortDocument(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	defer a.Close()

	_, err := a.AnalyzeFile(context.Background(), writeContract(t, "Too short."))
	if err == nil || !strings.Contains(err.Error(), "too short") {
		t.Errorf("Expected too-short error, got %v", err)
	}
}

func TestAnalyzer_ExtractionFailure(t *testing.T) {
	a := NewAnalyzer(testConfig(t))
	defer a.Close()

	_, err := a.AnalyzeFile(context.Background(), "/nonexistent/contract.txt")
	if err == nil || !strings.Contains(err.Error(), "extract document") {
		t.Errorf("Expected extraction error, got %v", err)
	}
}

func TestAnalyzer_CacheRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	a := NewAnalyzer(cfg)
	defer a.Close()

	path := writeContract(t, testContract)

	r1, err := a.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := a.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	// Second run is served from cache: same run id
	if r1.RunID != r2.RunID {
		t.Errorf("Expected cached report, got new run %q vs %q", r1.RunID, r2.RunID)
	}
}

func TestAnalyzer_AuditTrail(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audit.Enabled = true
	cfg.Audit.Path = filepath.Join(t.TempDir(), "audit.db")

	a := NewAnalyzer(cfg)
	defer a.Close()

	report, err := a.AnalyzeFile(context.Background(), writeContract(t, testContract))
	if err != nil {
		t.Fatal(err)
	}

	log, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer log.Close()

	entries, err := log.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 audit entry, got %d", len(entries))
	}
	e := entries[0]
	if e.RunID != report.RunID {
		t.Errorf("Audit run id %q != report run id %q", e.RunID, report.RunID)
	}
	if e.ClauseCount != len(report.ClauseAnalysis) {
		t.Errorf("Audit clause count %d != %d", e.ClauseCount, len(report.ClauseAnalysis))
	}
}

func TestKeyTerms(t *testing.T) {
	text := "The vendor shall deliver the software license and the software documentation. " +
		"The license covers software updates."

	terms := keyTerms(text)

	if len(terms) == 0 || terms[0] != "software" {
		t.Errorf("Expected 'software' as top term, got %v", terms)
	}
	if len(terms) > 5 {
		t.Errorf("Expected at most 5 terms, got %v", terms)
	}
	for _, term := range terms {
		if stopwords[term] {
			t.Errorf("Stopword %q leaked into key terms", term)
		}
	}
}

func TestWordCount(t *testing.T) {
	if n := wordCount("one two  three\nfour"); n != 4 {
		t.Errorf("wordCount = %d, want 4", n)
	}
	if n := wordCount("   "); n != 0 {
		t.Errorf("wordCount on blank = %d, want 0", n)
	}
}
