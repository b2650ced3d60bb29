package classify

import (
	"testing"

	"github.com/legalens/legalens/internal/model"
)

func newTestClassifier() *Classifier {
	return NewClassifier(model.DefaultRules())
}

func TestClassifier_BasicTypes(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "payment",
			text: "The Client shall pay the fee specified in each invoice when due.",
			want: "Payment Terms",
		},
		{
			name: "termination",
			text: "Either party may terminate this agreement; termination takes effect after notice.",
			want: "Termination",
		},
		{
			name: "indemnity",
			text: "The Vendor shall indemnify and hold harmless the Client against third-party claims.",
			want: "Indemnity",
		},
		{
			name: "confidentiality",
			text: "All proprietary and confidential information disclosed under this NDA remains secret.",
			want: "Confidentiality",
		},
		{
			name: "force majeure",
			text: "Neither party is responsible for delays caused by force majeure or any act of god beyond control.",
			want: "Force Majeure",
		},
		{
			name: "general provisions",
			text: "This document sets out miscellaneous administrative matters.",
			want: "General Provisions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifier_TieBreakFirstDeclaredWins(t *testing.T) {
	c := newTestClassifier()

	// One payment keyword ("fee") and one termination keyword ("cancel"):
	// a 1-1 tie resolves to Payment Terms because it is declared first.
	got := c.Classify("The fee is forfeited if you cancel.")
	if got != "Payment Terms" {
		t.Errorf("Expected tie to resolve to Payment Terms, got %q", got)
	}
}

func TestClassifier_HighestCountWins(t *testing.T) {
	c := newTestClassifier()

	// Two termination keywords beat one payment keyword
	got := c.Classify("The fee arrangement ends when either party elects to terminate or cancel.")
	if got != "Termination" {
		t.Errorf("Expected Termination, got %q", got)
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier()

	text := "The Vendor warrants that all deliverables conform to the specification and represent original work."
	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		if got := c.Classify(text); got != first {
			t.Fatalf("Classification not deterministic: %q then %q", first, got)
		}
	}
}

func TestClassifier_Totality(t *testing.T) {
	c := newTestClassifier()

	valid := make(map[string]bool)
	for _, typ := range c.Types() {
		valid[typ] = true
	}

	inputs := []string{
		"",
		"   ",
		"completely unrelated text about gardening",
		"TERMINATE TERMINATE TERMINATE",
		"lock-in period of 24 months with a minimum term commitment",
	}
	for _, text := range inputs {
		got := c.Classify(text)
		if !valid[got] {
			t.Errorf("Classify(%q) returned label outside the fixed set: %q", text, got)
		}
	}
}
