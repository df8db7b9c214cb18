// Package output serializes a pipeline run into the persisted JSON report.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/internal/models"
	"github.com/docsift/docsift/pkg/utils"
)

// refinedTextWords caps the refined text of each subsection entry.
const refinedTextWords = 100

// Report is the persisted result of one pipeline run.
type Report struct {
	Metadata           Metadata     `json:"metadata"`
	ExtractedSections  []Extracted  `json:"extracted_sections"`
	SubsectionAnalysis []Subsection `json:"subsection_analysis"`
}

// Metadata describes the run itself.
type Metadata struct {
	RunID          string   `json:"run_id"`
	Timestamp      string   `json:"processing_timestamp"`
	InputDocuments []string `json:"input_documents"`
	Persona        string   `json:"persona"`
	JobToBeDone    string   `json:"job_to_be_done"`
	SemanticUsed   bool     `json:"semantic_used"`
}

// Extracted is one ranked section heading.
type Extracted struct {
	Document       string  `json:"document"`
	SectionTitle   string  `json:"section_title"`
	ImportanceRank int     `json:"importance_rank"`
	PageNumber     int     `json:"page_number"`
	Score          float64 `json:"score"`
}

// Subsection carries the refined summary text for one ranked section.
type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// BuildReport converts a selection result into the report shape. The
// timestamp is taken from now so runs are reproducible in tests.
func BuildReport(result *models.SelectionResult, now time.Time) *Report {
	report := &Report{
		Metadata: Metadata{
			RunID:          uuid.New().String(),
			Timestamp:      now.UTC().Format(time.RFC3339),
			InputDocuments: result.Documents,
			Persona:        result.Query.Persona,
			JobToBeDone:    result.Query.Job,
			SemanticUsed:   result.SemanticUsed,
		},
		ExtractedSections:  make([]Extracted, 0, len(result.Sections)),
		SubsectionAnalysis: make([]Subsection, 0, len(result.Sections)),
	}
	for _, s := range result.Sections {
		report.ExtractedSections = append(report.ExtractedSections, Extracted{
			Document:       s.Section.DocumentID,
			SectionTitle:   s.Section.Heading,
			ImportanceRank: s.Rank,
			PageNumber:     s.Section.Page,
			Score:          s.Scores.Composite,
		})
		report.SubsectionAnalysis = append(report.SubsectionAnalysis, Subsection{
			Document:    s.Section.DocumentID,
			RefinedText: utils.TruncateWords(s.Summary, refinedTextWords),
			PageNumber:  s.Section.Page,
		})
	}
	return report
}

// Write serializes the report as indented JSON to path, creating parent
// directories as needed. An empty path writes to stdout.
func Write(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
