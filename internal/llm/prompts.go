package llm

import (
	"fmt"
	"strings"

	"github.com/legalens/legalens/internal/model"
)

const systemPrompt = "You are a legal assistant helping Indian SME business owners understand contracts."

// Prompt excerpts are capped so large contracts do not blow the token
// budget; the caps follow what each analysis actually needs to see.
const (
	classifyExcerpt    = 2000
	summaryExcerpt     = 4000
	risksExcerpt       = 4000
	complianceExcerpt  = 3000
	negotiationExcerpt = 200 // per clause
)

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

func classifyPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following contract text and classify it into one of these types:
- Employment Agreement
- Vendor Contract
- Lease Agreement
- Partnership Deed
- Service Contract
- Non-Disclosure Agreement
- General Contract

Provide your answer in this format:
Contract Type: [Type]
Confidence: [High/Medium/Low]
Reasoning: [Brief explanation]

Contract text (first %d characters):
%s
`, classifyExcerpt, truncate(text, classifyExcerpt))
}

func summaryPrompt(text, contractType string) string {
	return fmt.Sprintf(`You are a legal assistant helping Indian SME business owners understand contracts.

Analyze this %s and provide a simple, plain-language summary that a non-lawyer can understand. Focus on:
1. What this contract is about (2-3 sentences)
2. Who are the parties involved
3. Key obligations and rights
4. Important dates and deadlines
5. Payment terms (if any)
6. Termination conditions

Use simple business language. Avoid legal jargon. Be concise and clear.

Contract text:
%s
`, contractType, truncate(text, summaryExcerpt))
}

func risksPrompt(text, contractType string) string {
	return fmt.Sprintf(`You are a legal risk advisor for Indian SMEs.

Analyze this %s and identify potential legal risks. For each risk, provide:
- Risk Type (e.g., Payment Risk, Liability Risk, Termination Risk)
- Severity (HIGH/MEDIUM/LOW)
- Description (What is the risk?)
- Why It Matters (Impact on business)

Format each risk as:
RISK: [Type]
SEVERITY: [Level]
DESCRIPTION: [Brief description]
IMPACT: [Why it matters]
---

Contract text:
%s
`, contractType, truncate(text, risksExcerpt))
}

func compliancePrompt(text, contractType string) string {
	return fmt.Sprintf(`You are a legal compliance advisor for Indian businesses.

Analyze this %s for compliance with relevant Indian laws. Consider:
- Indian Contract Act, 1872
- Companies Act, 2013 (if applicable)
- Payment of Wages Act, 1936 (for employment)
- Consumer Protection Act, 2019 (if applicable)
- Information Technology Act, 2000 (if applicable)
- Transfer of Property Act, 1882 (for leases)

Provide:
1. Compliance Status: [Compliant/Needs Review/Non-Compliant]
2. Relevant Laws: List applicable Indian laws
3. Compliance Issues: Any potential compliance problems
4. Recommendations: What should be added or changed

Contract text (excerpt):
%s
`, contractType, truncate(text, complianceExcerpt))
}

func negotiationPrompt(clauses []model.UnfavorableClause) string {
	var b strings.Builder
	for i, clause := range clauses {
		fmt.Fprintf(&b, "Clause %d: %s\n\n", i+1, truncate(clause.Text, negotiationExcerpt))
	}

	return fmt.Sprintf(`You are a business negotiation advisor for Indian SMEs.

The following clauses have been identified as potentially unfavorable:

%s
Provide 5-7 specific negotiation points that a business owner can use when discussing these clauses.
Each point should:
1. Be clear and specific
2. Explain what to ask for
3. Include a brief rationale
4. Be reasonable and professional

Format as numbered list.
`, b.String())
}
