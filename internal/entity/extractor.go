package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/legalens/legalens/internal/model"
)

// context window captured on each side of a match, in bytes
const contextWindow = 50

// Indian states and cities recognized as jurisdiction mentions even
// without surrounding governing-law language
var indianLocations = []string{
	"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Chennai", "Kolkata",
	"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Maharashtra", "Karnataka",
	"Tamil Nadu", "Gujarat", "Rajasthan", "West Bengal", "Telangana",
	"India", "Indian",
}

var (
	betweenPartiesRe = regexp.MustCompile(`(?i)(?:between|by and between)\s+([A-Z][^,\n]+?)\s+(?:and|&)\s+([A-Z][^,\n]+?)(?:,|\.|;|\n)`)
	firstPartyRe     = regexp.MustCompile(`(?i)(?:Party\s+(?:1|One|First)|First Party)[:\s]+([A-Z][^\n,;]+)`)
	hereinafterRe    = regexp.MustCompile(`([A-Z][^,(\n]+?)\s+\(hereinafter referred to as[^)]+\)`)

	numericDateRe = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	monthDayRe    = regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`)
	dayMonthRe    = regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December),?\s+\d{4}\b`)

	inrPrefixRe = regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:Lakhs?|Crores?|Thousands?)?`)
	inrSuffixRe = regexp.MustCompile(`(?i)(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:Rupees|INR|Rs\.?)`)
	currencyRe  = regexp.MustCompile(`(?:USD|US\$|\$|EUR|€|GBP|£)\s*(\d+(?:,\d+)*(?:\.\d+)?)`)

	durationRe = regexp.MustCompile(`(?i)\b(\d+)\s+(year|month|week|day|hour)s?\b`)
	termOfRe   = regexp.MustCompile(`(?i)(?:term|period|duration)\s+of\s+(\d+)\s+(year|month|week|day)s?`)

	jurisdictionRe = regexp.MustCompile(`(?i)(?:jurisdiction|courts? of|governed by (?:the )?laws? of)\s+([A-Z][^,.\n]+)`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	phoneIntlIndiaRe = regexp.MustCompile(`\+91[\s-]?\d{10}`)
	phoneTenDigitRe  = regexp.MustCompile(`\b\d{10}\b`)
)

// Extractor pulls contract-specific entities out of plain text with
// pattern matching. Results are display metadata only.
type Extractor struct {
	locationRes []*regexp.Regexp
}

// NewExtractor creates an entity extractor
func NewExtractor() *Extractor {
	locationRes := make([]*regexp.Regexp, 0, len(indianLocations))
	for _, loc := range indianLocations {
		locationRes = append(locationRes, regexp.MustCompile(`(?i)\b`+loc+`\b`))
	}
	return &Extractor{locationRes: locationRes}
}

// Extract runs every extractor over the text
func (e *Extractor) Extract(text string) model.Entities {
	return model.Entities{
		Parties:       e.Parties(text),
		Dates:         e.Dates(text),
		Amounts:       e.Amounts(text),
		Durations:     e.Durations(text),
		Jurisdictions: e.Jurisdictions(text),
		Emails:        e.Emails(text),
		PhoneNumbers:  e.PhoneNumbers(text),
	}
}

// Parties extracts contracting parties, deduplicated case-insensitively.
// Names of three characters or fewer are noise and dropped.
func (e *Extractor) Parties(text string) []model.Party {
	parties := []model.Party{}

	for _, m := range betweenPartiesRe.FindAllStringSubmatch(text, -1) {
		parties = append(parties,
			model.Party{Name: strings.TrimSpace(m[1]), Role: "Party 1", Type: "organization/individual"},
			model.Party{Name: strings.TrimSpace(m[2]), Role: "Party 2", Type: "organization/individual"},
		)
	}
	for _, m := range firstPartyRe.FindAllStringSubmatch(text, -1) {
		parties = append(parties, model.Party{
			Name: strings.TrimSpace(m[1]), Role: "First Party", Type: "organization/individual",
		})
	}
	for _, m := range hereinafterRe.FindAllStringSubmatch(text, -1) {
		parties = append(parties, model.Party{
			Name: strings.TrimSpace(m[1]), Role: "Contracting Party", Type: "organization/individual",
		})
	}

	seen := map[string]bool{}
	unique := []model.Party{}
	for _, p := range parties {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if len(key) <= 3 || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

// Dates extracts date mentions in numeric, month-first, and day-first
// formats
func (e *Extractor) Dates(text string) []model.DateMention {
	dates := []model.DateMention{}

	for _, loc := range numericDateRe.FindAllStringIndex(text, -1) {
		dates = append(dates, model.DateMention{
			Date:    text[loc[0]:loc[1]],
			Format:  "numeric",
			Context: contextAround(text, loc[0], loc[1]),
		})
	}
	for _, loc := range monthDayRe.FindAllStringIndex(text, -1) {
		dates = append(dates, model.DateMention{
			Date:    text[loc[0]:loc[1]],
			Format:  "text",
			Context: contextAround(text, loc[0], loc[1]),
		})
	}
	for _, loc := range dayMonthRe.FindAllStringIndex(text, -1) {
		dates = append(dates, model.DateMention{
			Date:    text[loc[0]:loc[1]],
			Format:  "text_indian",
			Context: contextAround(text, loc[0], loc[1]),
		})
	}

	return dates
}

// Amounts extracts monetary amounts, INR first, then other currencies
func (e *Extractor) Amounts(text string) []model.Amount {
	amounts := []model.Amount{}

	for _, re := range []*regexp.Regexp{inrPrefixRe, inrSuffixRe} {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			amounts = append(amounts, model.Amount{
				Amount:   text[m[0]:m[1]],
				Currency: "INR",
				Value:    text[m[2]:m[3]],
				Context:  contextAround(text, m[0], m[1]),
			})
		}
	}

	for _, m := range currencyRe.FindAllStringSubmatchIndex(text, -1) {
		amounts = append(amounts, model.Amount{
			Amount:   text[m[0]:m[1]],
			Currency: "USD/Other",
			Value:    text[m[2]:m[3]],
			Context:  contextAround(text, m[0], m[1]),
		})
	}

	return amounts
}

// Durations extracts time periods such as "3 years" or "term of 12 months"
func (e *Extractor) Durations(text string) []model.Duration {
	durations := []model.Duration{}

	for _, m := range durationRe.FindAllStringSubmatchIndex(text, -1) {
		durations = append(durations, model.Duration{
			Duration: text[m[0]:m[1]],
			Value:    text[m[2]:m[3]],
			Unit:     strings.ToLower(text[m[4]:m[5]]),
			Context:  contextAround(text, m[0], m[1]),
		})
	}
	for _, m := range termOfRe.FindAllStringSubmatchIndex(text, -1) {
		durations = append(durations, model.Duration{
			Duration: text[m[2]:m[5]],
			Value:    text[m[2]:m[3]],
			Unit:     strings.ToLower(text[m[4]:m[5]]),
			Context:  contextAround(text, m[0], m[1]),
		})
	}

	return durations
}

// Jurisdictions extracts governing-law mentions and standalone Indian
// location names, deduplicated case-insensitively
func (e *Extractor) Jurisdictions(text string) []model.Jurisdiction {
	jurisdictions := []model.Jurisdiction{}

	for _, m := range jurisdictionRe.FindAllStringSubmatchIndex(text, -1) {
		jurisdictions = append(jurisdictions, model.Jurisdiction{
			Jurisdiction: strings.TrimSpace(text[m[2]:m[3]]),
			Type:         "specified",
			Context:      contextAround(text, m[0], m[1]),
		})
	}

	for i, re := range e.locationRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			jurisdictions = append(jurisdictions, model.Jurisdiction{
				Jurisdiction: indianLocations[i],
				Type:         "location",
				Context:      contextAround(text, loc[0], loc[1]),
			})
		}
	}

	seen := map[string]bool{}
	unique := []model.Jurisdiction{}
	for _, j := range jurisdictions {
		key := strings.ToLower(strings.TrimSpace(j.Jurisdiction))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, j)
	}
	return unique
}

// Emails extracts unique email addresses in first-seen order
func (e *Extractor) Emails(text string) []string {
	return uniqueStrings(emailRe.FindAllString(text, -1))
}

// PhoneNumbers extracts Indian phone numbers, +91-prefixed or bare
// ten-digit
func (e *Extractor) PhoneNumbers(text string) []string {
	phones := phoneIntlIndiaRe.FindAllString(text, -1)
	phones = append(phones, phoneTenDigitRe.FindAllString(text, -1)...)
	return uniqueStrings(phones)
}

func uniqueStrings(in []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	// round both cuts to rune boundaries so Devanagari text is not split
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to > from && to < len(text) && !utf8.RuneStart(text[to]) {
		to--
	}
	return strings.TrimSpace(text[from:to])
}
