package outline

import (
	"strings"

	"github.com/docsift/docsift/internal/models"
)

// boilerplateHeadings are section titles that never carry task-relevant
// content, regardless of how well they score.
var boilerplateHeadings = map[string]struct{}{
	"acknowledgment":   {},
	"acknowledgments":  {},
	"references":       {},
	"bibliography":     {},
	"table of contents": {},
	"index":            {},
	"appendix":         {},
	"glossary":         {},
	"about the author":  {},
	"about this book":   {},
	"copyright":        {},
	"introduction":     {},
	"preface":          {},
	"foreword":         {},
}

// Valid reports whether a section is worth ranking: a descriptive multi-word
// heading, enough content, and not a boilerplate title.
func Valid(s models.Section, cfg *Config) bool {
	heading := strings.TrimSpace(s.Heading)
	if heading == "" || strings.TrimSpace(s.Content) == "" {
		return false
	}
	if len(strings.Fields(heading)) < cfg.MinHeadingWords {
		return false
	}
	if len(strings.Fields(s.Content)) < cfg.MinValidWords {
		return false
	}
	if _, ok := boilerplateHeadings[strings.ToLower(heading)]; ok {
		return false
	}
	return true
}

// FilterValid drops invalid sections and reassigns dense order indexes so
// that position scoring stays normalized per document.
func FilterValid(sections []models.Section, cfg *Config) []models.Section {
	kept := make([]models.Section, 0, len(sections))
	for _, s := range sections {
		if !Valid(s, cfg) {
			continue
		}
		s.OrderIndex = len(kept)
		kept = append(kept, s)
	}
	return kept
}
