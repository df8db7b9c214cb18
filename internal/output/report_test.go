package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docsift/docsift/internal/models"
)

func testResult() *models.SelectionResult {
	return &models.SelectionResult{
		Query:     models.Query{Persona: "Food Contractor", Job: "Prepare a vegetarian buffet menu"},
		Documents: []string{"dinner.pdf", "sides.pdf"},
		Sections: []models.SelectedSection{
			{
				ScoredSection: models.ScoredSection{
					Section: models.Section{
						Heading:    "Vegetarian Mains",
						DocumentID: "dinner.pdf",
						Page:       4,
					},
					Scores: models.Scores{Composite: 0.82},
				},
				Rank:    1,
				Summary: "Hearty vegetable stews and baked pasta dishes work well for a buffet.",
			},
			{
				ScoredSection: models.ScoredSection{
					Section: models.Section{
						Heading:    "Salads and Sides",
						DocumentID: "sides.pdf",
						Page:       2,
					},
					Scores: models.Scores{Composite: 0.61},
				},
				Rank:    2,
				Summary: "Grain salads hold up on a buffet table.",
			},
		},
		SemanticUsed:    true,
		TotalCandidates: 12,
	}
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	report := BuildReport(testResult(), now)

	if report.Metadata.RunID == "" {
		t.Error("missing run id")
	}
	if report.Metadata.Timestamp != "2025-06-01T12:00:00Z" {
		t.Errorf("timestamp = %s", report.Metadata.Timestamp)
	}
	if report.Metadata.Persona != "Food Contractor" {
		t.Errorf("persona = %s", report.Metadata.Persona)
	}
	if len(report.Metadata.InputDocuments) != 2 {
		t.Errorf("input documents = %v", report.Metadata.InputDocuments)
	}
	if len(report.ExtractedSections) != 2 || len(report.SubsectionAnalysis) != 2 {
		t.Fatalf("got %d extracted, %d subsections", len(report.ExtractedSections), len(report.SubsectionAnalysis))
	}
	first := report.ExtractedSections[0]
	if first.SectionTitle != "Vegetarian Mains" || first.ImportanceRank != 1 || first.PageNumber != 4 {
		t.Errorf("first extracted section: %+v", first)
	}
	if report.SubsectionAnalysis[0].RefinedText == "" {
		t.Error("empty refined text")
	}
}

func TestBuildReport_RefinedTextCapped(t *testing.T) {
	result := testResult()
	result.Sections[0].Summary = strings.Repeat("word ", 300)
	report := BuildReport(result, time.Now())
	words := strings.Fields(report.SubsectionAnalysis[0].RefinedText)
	if len(words) > refinedTextWords+1 {
		t.Errorf("refined text has %d words", len(words))
	}
}

func TestBuildReport_DistinctRunIDs(t *testing.T) {
	now := time.Now()
	a := BuildReport(testResult(), now)
	b := BuildReport(testResult(), now)
	if a.Metadata.RunID == b.Metadata.RunID {
		t.Error("run ids must be unique per run")
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "report.json")
	report := BuildReport(testResult(), time.Now())
	if err := Write(report, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded Report
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Metadata.JobToBeDone != "Prepare a vegetarian buffet menu" {
		t.Errorf("job = %s", loaded.Metadata.JobToBeDone)
	}
	if len(loaded.ExtractedSections) != 2 {
		t.Errorf("extracted sections = %d", len(loaded.ExtractedSections))
	}
}
