package outline

import (
	"strings"

	"github.com/docsift/docsift/internal/models"
)

// Builder segments a document's runs into sections.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a section builder with the given configuration.
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyDefaults()
	return &Builder{cfg: cfg}
}

// Build walks the runs in reading order and pairs each heading with the
// content runs that follow it, up to the next heading or end of document.
// Heading runs with no other run between them are merged into one heading.
// Sections whose content falls below the minimum word threshold are dropped
// entirely, not merged into a neighbor. OrderIndex is dense and reflects
// reading order of the emitted sections.
func (b *Builder) Build(docID string, runs []models.TextRun) []models.Section {
	if len(runs) == 0 {
		return nil
	}
	profile := AnalyzeFonts(runs, b.cfg.MinRunChars)

	var sections []models.Section
	var heading string
	var headingPage int
	var content []string
	lastWasHeading := false

	flush := func() {
		if heading == "" {
			return
		}
		body := strings.TrimSpace(strings.Join(content, " "))
		if len(strings.Fields(body)) < b.cfg.MinSectionWords {
			return
		}
		sections = append(sections, models.Section{
			Heading:    heading,
			Content:    body,
			DocumentID: docID,
			Page:       headingPage,
			OrderIndex: len(sections),
		})
	}

	for _, run := range runs {
		text := strings.TrimSpace(run.Content)
		if text == "" {
			continue
		}
		if Classify(run, profile, b.cfg) == ClassHeading {
			if lastWasHeading && heading != "" && len(content) == 0 {
				// Immediately adjacent heading runs form one multi-line heading.
				heading += " " + text
			} else {
				flush()
				heading = text
				headingPage = run.Page
				content = content[:0]
			}
			lastWasHeading = true
			continue
		}
		if heading != "" {
			content = append(content, text)
		}
		lastWasHeading = false
	}
	flush()

	return sections
}

// Profile exposes the font profile the builder would use for runs, mainly
// for diagnostics and logging.
func (b *Builder) Profile(runs []models.TextRun) models.FontProfile {
	return AnalyzeFonts(runs, b.cfg.MinRunChars)
}
