package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/models"
)

// Class is the classification of a single text run.
type Class int

const (
	// ClassContent marks a run as body content.
	ClassContent Class = iota
	// ClassHeading marks a run as a section heading.
	ClassHeading
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassContent:
		return "content"
	case ClassHeading:
		return "heading"
	default:
		return "unknown"
	}
}

var bulletGlyphs = []string{"•", "●", "▪", "‣", "➤", "◦", "–", "—", "-", "*"}

var (
	// Enumerated sub-item markers: "(1)", "1)", "a)", "B)".
	enumParenRe  = regexp.MustCompile(`^\(?\d+\)`)
	enumLetterRe = regexp.MustCompile(`^[a-zA-Z]\)`)

	// Patterns that disqualify a line outright (checked lowercased).
	skipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d+$`),              // bare page / figure numbers
		regexp.MustCompile(`^[ivxlcdm]+$`),       // roman numerals
		regexp.MustCompile(`^\([^)]+\)$`),        // fully parenthesized
		regexp.MustCompile(`^(figure|table|fig|tab)[\s\d]`), // captions
		regexp.MustCompile(`^(see|refer|source|note)[\s:]`), // references
	}

	// Substrings typical of headers, footers, and boilerplate lines.
	footerKeywords = []string{"page ", "www.", "http", "@", "copyright", "©"}

	// Positive heading text patterns.
	numberedRe = regexp.MustCompile(`^\d+[.\s]`)
	decimalRe  = regexp.MustCompile(`^\d+\.\d+`)
	titleRe    = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*$`)
	allCapsRe  = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// IsBullet reports whether text starts like a bullet or enumerated sub-item.
// Bulleted lines are always content, overriding every other heading signal.
func IsBullet(text string) bool {
	text = strings.TrimSpace(text)
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(text, glyph) {
			return true
		}
	}
	return enumParenRe.MatchString(text) || enumLetterRe.MatchString(text)
}

// Classify decides whether a run is a heading or content, given the
// document's font profile. It is a pure function of its arguments; every
// threshold comes from cfg.
func Classify(run models.TextRun, profile models.FontProfile, cfg *Config) Class {
	text := strings.TrimSpace(run.Content)
	if utf8.RuneCountInString(text) < cfg.MinHeadingChars {
		return ClassContent
	}
	if IsBullet(text) {
		return ClassContent
	}

	words := len(strings.Fields(text))
	if words > cfg.MaxHeadingWords {
		return ClassContent
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, "?") || strings.HasSuffix(text, ";") {
		return ClassContent
	}

	lower := strings.ToLower(text)
	for _, re := range skipPatterns {
		if re.MatchString(lower) {
			return ClassContent
		}
	}
	for _, kw := range footerKeywords {
		if strings.Contains(lower, kw) {
			return ClassContent
		}
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
		return ClassContent
	}

	larger := !profile.Uniform && run.FontSize >= profile.BodySize+cfg.SizeMargin
	emphasized := run.Bold && !profile.BodyBold

	if larger || emphasized || matchesHeadingPattern(text, words, cfg) {
		return ClassHeading
	}
	return ClassContent
}

// matchesHeadingPattern reports whether text looks like a heading on its own:
// a numbered prefix, or a short title-case or all-caps line.
func matchesHeadingPattern(text string, words int, cfg *Config) bool {
	if numberedRe.MatchString(text) || decimalRe.MatchString(text) {
		return true
	}
	if words <= cfg.ShortLineWords && (titleRe.MatchString(text) || allCapsRe.MatchString(text)) {
		return true
	}
	return false
}
