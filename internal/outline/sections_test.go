package outline

import (
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/models"
)

// docRuns builds a plausible two-section document: body at 10pt regular,
// headings at 14pt bold.
func docRuns() []models.TextRun {
	return []models.TextRun{
		{Content: "1. Introduction", FontSize: 14, Bold: true, Page: 1},
		{Content: "this opening paragraph describes the purpose of the study in enough words", FontSize: 10, Page: 1},
		{Content: "and continues with additional plain body text on the same page", FontSize: 10, Page: 1},
		{Content: "2. Methods", FontSize: 14, Bold: true, Page: 2},
		{Content: "the methodology section explains the sampling procedure and statistical analysis", FontSize: 10, Page: 2},
		{Content: "with further details about instruments and data collection steps", FontSize: 10, Page: 2},
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	sections := b.Build("paper.pdf", docRuns())

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Heading != "1. Introduction" {
		t.Errorf("first heading = %q", sections[0].Heading)
	}
	if sections[1].Heading != "2. Methods" {
		t.Errorf("second heading = %q", sections[1].Heading)
	}
	if sections[0].OrderIndex != 0 || sections[1].OrderIndex != 1 {
		t.Errorf("order indexes = %d,%d, want 0,1", sections[0].OrderIndex, sections[1].OrderIndex)
	}
	if sections[1].Page != 2 {
		t.Errorf("second section page = %d, want 2", sections[1].Page)
	}
	if sections[0].DocumentID != "paper.pdf" {
		t.Errorf("document id = %q", sections[0].DocumentID)
	}
	if !strings.Contains(sections[1].Content, "sampling procedure") {
		t.Errorf("methods content lost: %q", sections[1].Content)
	}
}

func TestBuilder_BulletAttachedToPrecedingSection(t *testing.T) {
	runs := docRuns()
	// A bold, large bullet between the two content runs of section one must
	// stay content.
	runs = append(runs[:3], append([]models.TextRun{
		{Content: "• Note", FontSize: 14, Bold: true, Page: 1},
	}, runs[3:]...)...)

	b := NewBuilder(DefaultConfig())
	sections := b.Build("paper.pdf", runs)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if !strings.Contains(sections[0].Content, "• Note") {
		t.Errorf("bullet not attached to preceding section: %q", sections[0].Content)
	}
}

func TestBuilder_MergesAdjacentHeadings(t *testing.T) {
	runs := []models.TextRun{
		{Content: "3. Experimental", FontSize: 14, Bold: true, Page: 1},
		{Content: "Setup And Procedure", FontSize: 14, Bold: true, Page: 1},
		{Content: "body text describing the experimental setup with enough words here", FontSize: 10, Page: 1},
	}
	b := NewBuilder(DefaultConfig())
	sections := b.Build("doc.pdf", runs)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Heading != "3. Experimental Setup And Procedure" {
		t.Errorf("merged heading = %q", sections[0].Heading)
	}
}

func TestBuilder_HeadingAfterContentClosesSection(t *testing.T) {
	runs := []models.TextRun{
		{Content: "1. First", FontSize: 14, Bold: true, Page: 1},
		{Content: "short", FontSize: 10, Page: 1}, // under the word threshold
		{Content: "2. Second", FontSize: 14, Bold: true, Page: 1},
		{Content: "this later section has plenty of words to pass the threshold easily", FontSize: 10, Page: 1},
	}
	b := NewBuilder(DefaultConfig())
	sections := b.Build("doc.pdf", runs)
	// The undersized first section is dropped entirely, not merged.
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Heading != "2. Second" {
		t.Errorf("heading = %q, want the surviving second section", sections[0].Heading)
	}
	if sections[0].OrderIndex != 0 {
		t.Errorf("order index = %d, want dense reindexing from 0", sections[0].OrderIndex)
	}
}

func TestBuilder_ContentBeforeFirstHeadingDiscarded(t *testing.T) {
	runs := []models.TextRun{
		{Content: "orphan text before any heading appears in the document", FontSize: 10, Page: 1},
		{Content: "1. Real Section", FontSize: 14, Bold: true, Page: 1},
		{Content: "the real content of the first proper section with enough words", FontSize: 10, Page: 1},
	}
	b := NewBuilder(DefaultConfig())
	sections := b.Build("doc.pdf", runs)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if strings.Contains(sections[0].Content, "orphan") {
		t.Error("orphan pre-heading text leaked into a section")
	}
}

func TestBuilder_EmptyDocument(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	if got := b.Build("empty.pdf", nil); got != nil {
		t.Errorf("empty document: got %v, want nil", got)
	}
}
