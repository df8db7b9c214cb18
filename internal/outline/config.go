// Package outline turns a document's text runs into (heading, content)
// sections using font statistics and text-pattern heuristics.
package outline

// Config holds every threshold used by the font analyzer, the heading
// classifier, and the section builder, so the decision logic stays free of
// scattered literals.
type Config struct {
	// MinRunChars excludes very short runs (page numbers, footers) from
	// font statistics.
	MinRunChars int `yaml:"min_run_chars"` // default: 3
	// SizeMargin is how far a run's font size must exceed the body size
	// to count as a size-based heading signal.
	SizeMargin float64 `yaml:"size_margin"` // default: 0.5
	// MaxHeadingWords reclassifies longer lines as content regardless of
	// font signals; headings are short lines, not paragraphs.
	MaxHeadingWords int `yaml:"max_heading_words"` // default: 20
	// ShortLineWords caps title-case and all-caps pattern matches.
	ShortLineWords int `yaml:"short_line_words"` // default: 8
	// MinHeadingChars rejects near-empty heading candidates.
	MinHeadingChars int `yaml:"min_heading_chars"` // default: 3
	// MinSectionWords is the extractor's content threshold; sections with
	// less attached content are dropped entirely.
	MinSectionWords int `yaml:"min_section_words"` // default: 5
	// MinValidWords is the validation pass's stricter content threshold.
	MinValidWords int `yaml:"min_valid_words"` // default: 10
	// MinHeadingWords requires validated headings to be descriptive.
	MinHeadingWords int `yaml:"min_heading_words"` // default: 2
}

// DefaultConfig returns the default outline configuration.
func DefaultConfig() *Config {
	return &Config{
		MinRunChars:     3,
		SizeMargin:      0.5,
		MaxHeadingWords: 20,
		ShortLineWords:  8,
		MinHeadingChars: 3,
		MinSectionWords: 5,
		MinValidWords:   10,
		MinHeadingWords: 2,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.MinRunChars == 0 {
		c.MinRunChars = d.MinRunChars
	}
	if c.SizeMargin == 0 {
		c.SizeMargin = d.SizeMargin
	}
	if c.MaxHeadingWords == 0 {
		c.MaxHeadingWords = d.MaxHeadingWords
	}
	if c.ShortLineWords == 0 {
		c.ShortLineWords = d.ShortLineWords
	}
	if c.MinHeadingChars == 0 {
		c.MinHeadingChars = d.MinHeadingChars
	}
	if c.MinSectionWords == 0 {
		c.MinSectionWords = d.MinSectionWords
	}
	if c.MinValidWords == 0 {
		c.MinValidWords = d.MinValidWords
	}
	if c.MinHeadingWords == 0 {
		c.MinHeadingWords = d.MinHeadingWords
	}
}
