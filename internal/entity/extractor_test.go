package entity

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractor_Parties(t *testing.T) {
	e := NewExtractor()

	text := "This Agreement is made between Acme Services Pvt Ltd and Sharma Traders, " +
		"on the date written below. Acme Services Pvt Ltd (hereinafter referred to as the Vendor) " +
		"agrees to the terms herein."

	parties := e.Parties(text)

	if len(parties) != 2 {
		t.Fatalf("Expected 2 unique parties, got %+v", parties)
	}
	if parties[0].Name != "Acme Services Pvt Ltd" || parties[0].Role != "Party 1" {
		t.Errorf("Unexpected first party: %+v", parties[0])
	}
	if parties[1].Name != "Sharma Traders" || parties[1].Role != "Party 2" {
		t.Errorf("Unexpected second party: %+v", parties[1])
	}
}

func TestExtractor_PartiesDropShortNames(t *testing.T) {
	e := NewExtractor()

	parties := e.Parties("This contract is between Ab and Acme Corporation, effective today.")
	for _, p := range parties {
		if strings.EqualFold(p.Name, "Ab") {
			t.Errorf("Short name should be dropped: %+v", parties)
		}
	}
}

func TestExtractor_Dates(t *testing.T) {
	e := NewExtractor()

	text := "Signed on 15/04/2024. Renewal falls on January 1, 2025. " +
		"Notice served on 3rd March 2024 as agreed."

	dates := e.Dates(text)

	formats := map[string]string{}
	for _, d := range dates {
		formats[d.Format] = d.Date
	}

	if formats["numeric"] != "15/04/2024" {
		t.Errorf("Expected numeric date 15/04/2024, got %q", formats["numeric"])
	}
	if formats["text"] != "January 1, 2025" {
		t.Errorf("Expected text date, got %q", formats["text"])
	}
	if formats["text_indian"] != "3rd March 2024" {
		t.Errorf("Expected Indian format date, got %q", formats["text_indian"])
	}
}

func TestExtractor_Amounts(t *testing.T) {
	e := NewExtractor()

	text := "A monthly fee of Rs. 50,000 is payable. A deposit of INR 1,00,000 is due at signing. " +
		"International clients pay $2,500 per month."

	amounts := e.Amounts(text)

	var inr, other int
	for _, a := range amounts {
		switch a.Currency {
		case "INR":
			inr++
		case "USD/Other":
			other++
		}
	}

	if inr != 2 {
		t.Errorf("Expected 2 INR amounts, got %d: %+v", inr, amounts)
	}
	if other != 1 {
		t.Errorf("Expected 1 foreign amount, got %d: %+v", other, amounts)
	}

	for _, a := range amounts {
		if a.Value == "" {
			t.Errorf("Amount missing numeric value: %+v", a)
		}
		if !strings.Contains(a.Context, a.Value) {
			t.Errorf("Context does not contain the value: %+v", a)
		}
	}
}

func TestExtractor_Durations(t *testing.T) {
	e := NewExtractor()

	text := "The engagement runs for 3 years with a notice period of 30 days."
	durations := e.Durations(text)

	units := map[string]string{}
	for _, d := range durations {
		units[d.Unit] = d.Value
	}

	if units["year"] != "3" {
		t.Errorf("Expected 3 years, got %+v", durations)
	}
	if units["day"] != "30" {
		t.Errorf("Expected 30 days, got %+v", durations)
	}
}

func TestExtractor_Jurisdictions(t *testing.T) {
	e := NewExtractor()

	text := "This agreement shall be governed by the laws of India. " +
		"The courts of Mumbai shall have exclusive jurisdiction."

	jurisdictions := e.Jurisdictions(text)

	found := map[string]bool{}
	for _, j := range jurisdictions {
		found[strings.ToLower(j.Jurisdiction)] = true
	}

	if !found["india"] {
		t.Errorf("Expected India, got %+v", jurisdictions)
	}
	if !found["mumbai"] {
		t.Errorf("Expected Mumbai, got %+v", jurisdictions)
	}
}

func TestExtractor_JurisdictionsDeduplicated(t *testing.T) {
	e := NewExtractor()

	text := "Disputes go to Mumbai courts. The Mumbai office handles notices. Mumbai again."
	jurisdictions := e.Jurisdictions(text)

	count := 0
	for _, j := range jurisdictions {
		if strings.EqualFold(j.Jurisdiction, "Mumbai") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Mumbai deduplicated to 1 entry, got %+v", jurisdictions)
	}
}

func TestExtractor_ContextRuneBoundary(t *testing.T) {
	e := NewExtractor()

	// Devanagari padding puts the context window cuts mid-rune; the
	// captured context must still be valid UTF-8
	pad := strings.Repeat("क", 60)
	text := pad + " Mumbai " + pad
	jurisdictions := e.Jurisdictions(text)
	if len(jurisdictions) == 0 {
		t.Fatal("Expected at least one jurisdiction")
	}
	for _, j := range jurisdictions {
		if !utf8.ValidString(j.Context) {
			t.Errorf("Context split a multi-byte character: %q", j.Context)
		}
	}
}

func TestExtractor_EmailsAndPhones(t *testing.T) {
	e := NewExtractor()

	text := "Contact accounts@acme.in or legal@acme.in for invoices. " +
		"Phone: +91 9876543210. Office landline 0221234567 is unattended. " +
		"Duplicate mail to accounts@acme.in is ignored."

	emails := e.Emails(text)
	if len(emails) != 2 {
		t.Errorf("Expected 2 unique emails, got %v", emails)
	}

	phones := e.PhoneNumbers(text)
	hasIntl := false
	for _, p := range phones {
		if strings.HasPrefix(p, "+91") {
			hasIntl = true
		}
	}
	if !hasIntl {
		t.Errorf("Expected +91 number, got %v", phones)
	}
}

func TestExtractor_EmptyText(t *testing.T) {
	e := NewExtractor()

	entities := e.Extract("")
	if len(entities.Parties) != 0 || len(entities.Dates) != 0 || len(entities.Amounts) != 0 ||
		len(entities.Durations) != 0 || len(entities.Jurisdictions) != 0 ||
		len(entities.Emails) != 0 || len(entities.PhoneNumbers) != 0 {
		t.Errorf("Expected no entities on empty text, got %+v", entities)
	}
}
