package selection

import (
	"regexp"
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/ranking"
	"github.com/docsift/docsift/pkg/utils"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

// Summarizer builds extractive summaries: the most term-dense sentences of a
// section, re-ordered back into reading order.
type Summarizer struct {
	sentences int
}

// NewSummarizer creates a summarizer keeping up to sentences sentences.
func NewSummarizer(sentences int) *Summarizer {
	if sentences <= 0 {
		sentences = 3
	}
	return &Summarizer{sentences: sentences}
}

// splitSentences breaks content into trimmed sentences, dropping empties.
func splitSentences(content string) []string {
	raw := sentenceRe.FindAllString(content, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Summarize returns an extractive summary of content. Sentences are scored
// by their TF-IDF weight in a space fitted over the section's own sentences,
// the top ones are kept, and the kept sentences are re-ordered by original
// position so the summary reads naturally. Short content is returned whole,
// with whitespace normalized.
func (s *Summarizer) Summarize(content string) string {
	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= s.sentences {
		return utils.CollapseWhitespace(content)
	}

	vectorizer := ranking.NewVectorizer(1, 5000, 1.0)
	vectorizer.Fit(sentences)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		total := 0.0
		for _, w := range vectorizer.Transform(sentence) {
			total += w
		}
		ranked[i] = scored{index: i, score: total}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	keep := ranked[:s.sentences]
	sort.Slice(keep, func(i, j int) bool { return keep[i].index < keep[j].index })

	parts := make([]string, len(keep))
	for i, k := range keep {
		parts[i] = sentences[k.index]
	}
	return strings.Join(parts, " ")
}
