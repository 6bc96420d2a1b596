package redact

import (
	"regexp"
	"sort"
	"strings"
)

// Type classifies a detected sensitive span
type Type string

const (
	TypeEmail      Type = "email"
	TypePhone      Type = "phone"
	TypeSSN        Type = "ssn"
	TypeCreditCard Type = "credit_card"
	TypeToken      Type = "token"
)

// Redaction records one masked span. Original is kept for audit logging
// only and must never be forwarded to the LLM. Position is the character
// offset in the original text.
type Redaction struct {
	Type     Type   `json:"type"`
	Original string `json:"-"`
	Position int    `json:"position"`
}

// Result is the redacted text plus what was masked
type Result struct {
	Text       string      `json:"text"`
	Redactions []Redaction `json:"redactions"`
}

type pattern struct {
	class       Type
	re          *regexp.Regexp
	placeholder string
}

// Patterns are applied in a fixed order. The generic token pattern is
// intentionally broad, so it runs last; more specific classes claim their
// spans first and overlapping token candidates are skipped.
var patterns = []pattern{
	{
		class:       TypeEmail,
		re:          regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		placeholder: "[EMAIL_REDACTED]",
	},
	{
		class:       TypePhone,
		re:          regexp.MustCompile(`(?:\+?\d{1,2}[\s.-]?)?\(?\b\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`),
		placeholder: "[PHONE_REDACTED]",
	},
	{
		class:       TypeSSN,
		re:          regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		placeholder: "[SSN_REDACTED]",
	},
	{
		class:       TypeCreditCard,
		re:          regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`),
		placeholder: "[CARD_REDACTED]",
	},
	{
		class:       TypeToken,
		re:          regexp.MustCompile(`(?i)\b(?:sk|pk|rk|api|key|token|bearer|secret)[-_][A-Za-z0-9_-]{16,}\b|\b[A-Za-z0-9+/_-]{32,}\b`),
		placeholder: "[TOKEN_REDACTED]",
	},
}

type claim struct {
	start       int
	end         int
	class       Type
	placeholder string
}

// ------------------------------------------------------------------------------------------------------
// Redact masks every detected sensitive span in text with a constant
// placeholder. All pattern classes are matched against the original text;
// a candidate that overlaps an already-claimed span is dropped, so later
// (broader) classes can never eat fragments claimed by earlier ones.
// Running Redact on its own output yields zero redactions.
func Redact(text string) Result {
	var claims []claim
	var redactions []Redaction

	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if overlapsAny(claims, loc[0], loc[1]) {
				continue
			}
			claims = append(claims, claim{
				start:       loc[0],
				end:         loc[1],
				class:       p.class,
				placeholder: p.placeholder,
			})
			redactions = append(redactions, Redaction{
				Type:     p.class,
				Original: text[loc[0]:loc[1]],
				Position: loc[0],
			})
		}
	}

	if len(claims) == 0 {
		return Result{Text: text, Redactions: []Redaction{}}
	}

	sort.Slice(claims, func(i, j int) bool {
		return claims[i].start < claims[j].start
	})
	sort.Slice(redactions, func(i, j int) bool {
		return redactions[i].Position < redactions[j].Position
	})

	var b strings.Builder
	prev := 0
	for _, c := range claims {
		b.WriteString(text[prev:c.start])
		b.WriteString(c.placeholder)
		prev = c.end
	}
	b.WriteString(text[prev:])

	return Result{Text: b.String(), Redactions: redactions}
}

// ------------------------------------------------------------------------------------------------------
func overlapsAny(claims []claim, start, end int) bool {
	for _, c := range claims {
		if start < c.end && end > c.start {
			return true
		}
	}
	return false
}

// ------------------------------------------------------------------------------------------------------
// CountByType aggregates redactions for audit logging, which must never
// include the raw matched text
func CountByType(redactions []Redaction) map[Type]int {
	counts := make(map[Type]int)
	for _, r := range redactions {
		counts[r.Type]++
	}
	return counts
}
