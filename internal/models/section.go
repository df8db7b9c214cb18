package models

// Section is a heading plus its associated body content, the atomic unit of
// ranking. Sections are never mutated after extraction; scoring produces a
// ScoredSection instead.
type Section struct {
	Heading    string `json:"heading"`
	Content    string `json:"content"`
	DocumentID string `json:"document_id"`
	// Page is the page number of the heading (1-based).
	Page int `json:"page"`
	// OrderIndex is the section's position in document reading order,
	// 0-based and monotonically increasing within one document.
	OrderIndex int `json:"order_index"`
}

// Scores holds the component relevance scores for a section, each in [0,1],
// plus the weighted composite used for ranking.
type Scores struct {
	Semantic  float64 `json:"semantic_score"`
	TFIDF     float64 `json:"tfidf_score"`
	Keyword   float64 `json:"keyword_score"`
	Position  float64 `json:"position_score"`
	Heading   float64 `json:"heading_score"`
	Length    float64 `json:"length_score"`
	Composite float64 `json:"composite_score"`
}

// ScoredSection pairs a section with its relevance scores.
type ScoredSection struct {
	Section Section `json:"section"`
	Scores  Scores  `json:"scores"`
}

// SelectedSection is a section accepted by the selector, with its final rank
// and an extractive summary distinct from the raw content.
type SelectedSection struct {
	ScoredSection
	Rank    int    `json:"rank"`
	Summary string `json:"summary"`
}

// SelectionResult is the ordered output of a full pipeline run.
type SelectionResult struct {
	Query Query `json:"query"`
	// Documents lists every input document that was successfully processed,
	// in the order it was read (including documents that yielded no
	// sections, but not documents that could not be parsed).
	Documents []string          `json:"documents"`
	Sections  []SelectedSection `json:"sections"`
	// SemanticUsed reports whether dense-embedding similarity contributed
	// to the composite scores, or the run fell back to TF-IDF only.
	SemanticUsed bool `json:"semantic_used"`
	// TotalCandidates is the number of sections that survived extraction
	// and entered scoring, before selection.
	TotalCandidates int `json:"total_candidates"`
}
