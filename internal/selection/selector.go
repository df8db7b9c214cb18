package selection

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/models"
)

// Selector picks the final ranked subset of scored sections and attaches
// extractive summaries.
type Selector struct {
	cfg        *Config
	summarizer *Summarizer
	logger     *zap.Logger
}

// NewSelector creates a selector. cfg may be nil for defaults.
func NewSelector(cfg *Config, logger *zap.Logger) *Selector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		cfg:        cfg,
		summarizer: NewSummarizer(cfg.SummarySentences),
		logger:     logger,
	}
}

// headingWords returns the lowercase word set of a heading.
func headingWords(heading string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(heading)) {
		set[w] = struct{}{}
	}
	return set
}

// headingOverlap is the Jaccard similarity of two heading word sets.
func headingOverlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

type sectionKey struct {
	doc     string
	heading string
	page    int
}

// Select sorts scored sections by composite score and walks the list,
// accepting up to MaxSections total with at most MaxPerDocument from any one
// document; when the list runs out first the result is simply shorter.
// Exact and near-duplicate headings are skipped. With RelaxCap set, a second
// pass refills a short result ignoring the per-document cap. Each accepted
// section gets a rank starting at 1 and an extractive summary.
func (s *Selector) Select(scored []models.ScoredSection) []models.SelectedSection {
	if len(scored) == 0 {
		return nil
	}

	ordered := make([]models.ScoredSection, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Scores.Composite != b.Scores.Composite {
			return a.Scores.Composite > b.Scores.Composite
		}
		if a.Section.OrderIndex != b.Section.OrderIndex {
			return a.Section.OrderIndex < b.Section.OrderIndex
		}
		return a.Section.DocumentID < b.Section.DocumentID
	})

	seen := make(map[sectionKey]struct{})
	perDoc := make(map[string]int)
	var accepted []models.ScoredSection
	var acceptedWords []map[string]struct{}

	admit := func(sec models.ScoredSection, enforceCap bool) bool {
		key := sectionKey{doc: sec.Section.DocumentID, heading: sec.Section.Heading, page: sec.Section.Page}
		if _, ok := seen[key]; ok {
			return false
		}
		if enforceCap && perDoc[sec.Section.DocumentID] >= s.cfg.MaxPerDocument {
			return false
		}
		words := headingWords(sec.Section.Heading)
		for _, prev := range acceptedWords {
			if headingOverlap(words, prev) >= s.cfg.DuplicateThreshold {
				return false
			}
		}
		seen[key] = struct{}{}
		perDoc[sec.Section.DocumentID]++
		accepted = append(accepted, sec)
		acceptedWords = append(acceptedWords, words)
		return true
	}

	for _, sec := range ordered {
		if len(accepted) >= s.cfg.MaxSections {
			break
		}
		admit(sec, true)
	}
	// Optional relaxation pass: when the diversity cap starved the result,
	// refill from the remaining candidates without the cap. Only when
	// explicitly enabled; the cap is otherwise unconditional.
	if s.cfg.RelaxCap && len(accepted) < s.cfg.MaxSections {
		for _, sec := range ordered {
			if len(accepted) >= s.cfg.MaxSections {
				break
			}
			if admit(sec, false) {
				s.logger.Debug("diversity cap relaxed",
					zap.String("document", sec.Section.DocumentID),
					zap.String("heading", sec.Section.Heading))
			}
		}
	}

	result := make([]models.SelectedSection, len(accepted))
	for i, sec := range accepted {
		result[i] = models.SelectedSection{
			ScoredSection: sec,
			Rank:          i + 1,
			Summary:       s.summarizer.Summarize(sec.Section.Content),
		}
	}
	return result
}
