package ranking

import (
	"github.com/blevesearch/go-porterstemmer"
)

// StemmedTerms returns the unique, stemmed, stop-word-free terms of text,
// in first-appearance order. Used for keyword coverage, where "methodology"
// in a query should match "methodologies" in a section.
func StemmedTerms(text string) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, tok := range tokenizeText(text) {
		stem := porterstemmer.StemString(tok)
		if stem == "" {
			continue
		}
		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		terms = append(terms, stem)
	}
	return terms
}

// stemSet returns the stemmed terms of text as a set.
func stemSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenizeText(text) {
		if stem := porterstemmer.StemString(tok); stem != "" {
			set[stem] = struct{}{}
		}
	}
	return set
}
