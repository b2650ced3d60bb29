package risk

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/legalens/legalens/internal/model"
)

func newTestSelector() *Selector {
	return NewSelector(model.DefaultRules())
}

func TestSelector_HighSeverityFinding(t *testing.T) {
	s := newTestSelector()

	clauses := []model.ClauseAnalysis{
		{
			ClauseID:     "3.",
			ClauseType:   "Termination",
			OriginalText: "The Company may terminate at any time.",
			Risks: []model.RiskFinding{
				{RiskType: "Unilateral Termination", Severity: model.SeverityHigh},
				{RiskType: "Late Payment", Severity: model.SeverityMedium},
			},
		},
	}

	unfavorable := s.Select(clauses)

	if len(unfavorable) != 1 {
		t.Fatalf("Expected 1 unfavorable clause, got %+v", unfavorable)
	}
	u := unfavorable[0]
	if u.Severity != "HIGH" {
		t.Errorf("Expected HIGH severity, got %s", u.Severity)
	}
	// Only the HIGH findings appear as reasons
	if !reflect.DeepEqual(u.Reasons, []string{"Unilateral Termination"}) {
		t.Errorf("Expected reasons [Unilateral Termination], got %v", u.Reasons)
	}
	if u.ClauseID != "3." || u.ClauseType != "Termination" {
		t.Errorf("Clause identity not carried over: %+v", u)
	}
}

func TestSelector_AmbiguityThreshold(t *testing.T) {
	s := newTestSelector()

	ambiguous := func(n int) []model.Ambiguity {
		out := make([]model.Ambiguity, n)
		for i := range out {
			out[i] = model.Ambiguity{Phrase: "reasonable"}
		}
		return out
	}

	// Exactly at the threshold: not flagged
	atThreshold := s.Select([]model.ClauseAnalysis{{ClauseID: "1.", Ambiguities: ambiguous(2)}})
	if len(atThreshold) != 0 {
		t.Errorf("Expected no unfavorable clause at 2 ambiguities, got %+v", atThreshold)
	}

	// Above the threshold: flagged MEDIUM
	above := s.Select([]model.ClauseAnalysis{{ClauseID: "1.", Ambiguities: ambiguous(3)}})
	if len(above) != 1 {
		t.Fatalf("Expected 1 unfavorable clause at 3 ambiguities, got %+v", above)
	}
	if above[0].Severity != "MEDIUM" {
		t.Errorf("Expected MEDIUM severity, got %s", above[0].Severity)
	}
	if !reflect.DeepEqual(above[0].Reasons, []string{"Multiple Ambiguous Terms"}) {
		t.Errorf("Expected ambiguity reason, got %v", above[0].Reasons)
	}
}

func TestSelector_HighRuleTakesPrecedence(t *testing.T) {
	s := newTestSelector()

	clauses := []model.ClauseAnalysis{
		{
			ClauseID: "1.",
			Risks: []model.RiskFinding{
				{RiskType: "Unlimited Liability", Severity: model.SeverityHigh},
			},
			Ambiguities: make([]model.Ambiguity, 5),
		},
	}

	unfavorable := s.Select(clauses)

	if len(unfavorable) != 1 {
		t.Fatalf("Expected a single entry, got %+v", unfavorable)
	}
	if unfavorable[0].Severity != "HIGH" {
		t.Errorf("Expected HIGH rule to win, got %+v", unfavorable[0])
	}
}

func TestSelector_PreviewTruncation(t *testing.T) {
	s := newTestSelector()

	long := strings.Repeat("a", 300)
	clauses := []model.ClauseAnalysis{
		{
			ClauseID:     "1.",
			OriginalText: long,
			Risks:        []model.RiskFinding{{RiskType: "X", Severity: model.SeverityHigh}},
		},
		{
			ClauseID:     "2.",
			OriginalText: "short text",
			Risks:        []model.RiskFinding{{RiskType: "Y", Severity: model.SeverityHigh}},
		},
	}

	unfavorable := s.Select(clauses)
	if len(unfavorable) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(unfavorable))
	}

	if len(unfavorable[0].Text) != 203 || !strings.HasSuffix(unfavorable[0].Text, "...") {
		t.Errorf("Expected 200-char preview with ellipsis, got %d chars", len(unfavorable[0].Text))
	}
	if unfavorable[1].Text != "short text" {
		t.Errorf("Short text must pass through unmodified, got %q", unfavorable[1].Text)
	}
}

func TestSelector_PreviewRuneBoundary(t *testing.T) {
	s := newTestSelector()

	// Devanagari runes are three bytes each; the 200-byte cut lands
	// mid-rune and must be rounded back
	long := strings.Repeat("अनुबंध ", 40)
	clauses := []model.ClauseAnalysis{
		{
			ClauseID:     "4.",
			OriginalText: long,
			Risks:        []model.RiskFinding{{RiskType: "X", Severity: model.SeverityHigh}},
		},
	}

	unfavorable := s.Select(clauses)
	if len(unfavorable) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(unfavorable))
	}
	if !utf8.ValidString(unfavorable[0].Text) {
		t.Errorf("Preview split a multi-byte character: %q", unfavorable[0].Text)
	}
	if !strings.HasSuffix(unfavorable[0].Text, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", unfavorable[0].Text)
	}
}

func TestSelector_PreservesClauseOrder(t *testing.T) {
	s := newTestSelector()

	clauses := []model.ClauseAnalysis{
		{ClauseID: "2.", Risks: []model.RiskFinding{{RiskType: "A", Severity: model.SeverityHigh}}},
		{ClauseID: "1.", Ambiguities: make([]model.Ambiguity, 4)},
		{ClauseID: "3.", Risks: []model.RiskFinding{{RiskType: "B", Severity: model.SeverityHigh}}},
	}

	unfavorable := s.Select(clauses)

	var ids []string
	for _, u := range unfavorable {
		ids = append(ids, u.ClauseID)
	}
	if !reflect.DeepEqual(ids, []string{"2.", "1.", "3."}) {
		t.Errorf("Expected processing order preserved, got %v", ids)
	}
}
