// Package models defines core data structures for text runs, sections, queries, and results.
package models

// TextRun is a contiguous span of text extracted from one line of a document,
// together with the font metadata needed for heading detection. Runs are
// immutable once extracted.
type TextRun struct {
	Content  string  `json:"content"`
	FontSize float64 `json:"font_size"`
	Bold     bool    `json:"bold"`
	Page     int     `json:"page"`
	// Y is the vertical baseline position of the run on its page, in PDF
	// coordinates (larger = higher on the page).
	Y float64 `json:"y"`
}

// Words returns the number of whitespace-separated words in the run.
func (r TextRun) Words() int {
	n := 0
	inWord := false
	for _, c := range r.Content {
		if c == ' ' || c == '\t' || c == '\n' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// FontProfile is a document-scoped aggregate of font statistics. It is
// computed once per document and read-only afterward.
type FontProfile struct {
	// BodySize is the dominant (mode, median fallback) font size of body text.
	BodySize float64
	// BodyBold reports whether the dominant body text is bold.
	BodyBold bool
	// SizeCounts maps font size to the number of words observed at that size.
	SizeCounts map[float64]int
	// Uniform is set when the document has zero or one distinct font size,
	// in which case size-based heading signals are disabled.
	Uniform bool
}
