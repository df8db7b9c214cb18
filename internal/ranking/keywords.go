package ranking

import (
	"regexp"
	"strings"
)

// Patterns for terms likely to carry a section's topic.
var (
	titleCaseTermRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	suffixTermRe    = regexp.MustCompile(`(?i)\b\w+(?:ology|ics|ism|tion|sion|ment|ness|ity)\b`)
	techTermRe      = regexp.MustCompile(`(?i)\b(?:method|approach|technique|algorithm|model|framework)\w*\b`)
)

// SalientTerms extracts up to limit topic-bearing terms from text:
// title-case phrases, words with academic suffixes, and technical
// vocabulary, deduplicated in order of appearance.
func SalientTerms(text string, limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	var terms []string
	seen := make(map[string]struct{})
	for _, re := range []*regexp.Regexp{titleCaseTermRe, suffixTermRe, techTermRe} {
		for _, m := range re.FindAllString(text, -1) {
			key := strings.ToLower(m)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			terms = append(terms, m)
			if len(terms) >= limit {
				return terms
			}
		}
	}
	return terms
}

// enrichedText builds the representation a section is vectorized and
// embedded as: heading first (it names the topic), then content, then the
// extracted salient terms repeated so topical vocabulary gets extra weight.
func enrichedText(heading, content string, maxTerms int) string {
	terms := SalientTerms(heading+" "+content, maxTerms)
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(heading))
	sb.WriteString(". ")
	sb.WriteString(strings.TrimSpace(content))
	if len(terms) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(terms, " "))
	}
	return sb.String()
}
