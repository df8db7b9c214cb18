package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/docsift/docsift/pkg/utils"
)

// informativeHeadingWords mark headings that typically name substantive
// material.
var informativeHeadingWords = []string{"method", "result", "analysis", "approach", "technique"}

// KeywordScore is the fraction of the query's stemmed terms present in the
// section text, in [0,1]. An unrecognizable query scores 0 everywhere.
func KeywordScore(queryTerms []string, sectionText string) float64 {
	if len(queryTerms) == 0 {
		return 0
	}
	sectionTerms := stemSet(sectionText)
	matched := 0
	for _, term := range queryTerms {
		if _, ok := sectionTerms[term]; ok {
			matched++
		}
	}
	return utils.Clamp01(float64(matched) / float64(len(queryTerms)))
}

// PositionScore rewards sections appearing early, normalized per document:
// the first section of every document scores highest and scores decay
// linearly with order index. A small bonus favors early pages.
func PositionScore(orderIndex, docSections, page int) float64 {
	if docSections <= 0 || orderIndex < 0 || orderIndex >= docSections {
		return 0
	}
	order := 1 - float64(orderIndex)/float64(docSections)
	pageBonus := 0.0
	if page >= 1 && page <= 10 {
		pageBonus = float64(10-page) / 10
	}
	return utils.Clamp01(0.9*order + 0.1*pageBonus)
}

// HeadingScore is a heuristic quality score for the heading string in
// [0,1]: empty or single-character headings score 0, multi-word headings
// score higher, and headings naming substantive material higher still.
func HeadingScore(heading string) float64 {
	heading = strings.TrimSpace(heading)
	if utf8.RuneCountInString(heading) < 2 {
		return 0
	}
	words := strings.Fields(heading)
	if len(words) == 0 {
		return 0
	}
	score := 0.4
	if len(words) >= 2 {
		score += 0.3
	}
	lower := strings.ToLower(heading)
	for _, w := range informativeHeadingWords {
		if strings.Contains(lower, w) {
			score += 0.3
			break
		}
	}
	return utils.Clamp01(score)
}

// LengthScore rewards substantial content, saturating at saturation words
// so very long sections gain no unbounded benefit.
func LengthScore(contentWords, saturation int) float64 {
	if contentWords <= 0 {
		return 0
	}
	if saturation <= 0 {
		saturation = 100
	}
	return utils.Clamp01(float64(contentWords) / float64(saturation))
}
