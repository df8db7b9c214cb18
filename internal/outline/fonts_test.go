package outline

import (
	"testing"

	"github.com/docsift/docsift/internal/models"
)

func run(text string, size float64, bold bool) models.TextRun {
	return models.TextRun{Content: text, FontSize: size, Bold: bold, Page: 1}
}

func TestAnalyzeFonts_Mode(t *testing.T) {
	runs := []models.TextRun{
		run("body text runs on and on with many words here", 10, false),
		run("more plain body text across the page", 10, false),
		run("Big Heading", 14, true),
	}
	profile := AnalyzeFonts(runs, 3)
	if profile.BodySize != 10 {
		t.Errorf("BodySize = %v, want 10", profile.BodySize)
	}
	if profile.BodyBold {
		t.Error("BodyBold = true, want false")
	}
	if profile.Uniform {
		t.Error("Uniform = true for two distinct sizes")
	}
}

func TestAnalyzeFonts_ExcludesShortRuns(t *testing.T) {
	runs := []models.TextRun{
		run("42", 8, false), // page number, below min chars
		run("actual body paragraph with several words", 11, false),
	}
	profile := AnalyzeFonts(runs, 3)
	if profile.BodySize != 11 {
		t.Errorf("BodySize = %v, want 11 (short run excluded)", profile.BodySize)
	}
	if _, ok := profile.SizeCounts[8]; ok {
		t.Error("short run leaked into size histogram")
	}
}

func TestAnalyzeFonts_UniformDocument(t *testing.T) {
	runs := []models.TextRun{
		run("everything at one size", 12, false),
		run("still the same size", 12, false),
	}
	profile := AnalyzeFonts(runs, 3)
	if !profile.Uniform {
		t.Error("Uniform = false for single-size document")
	}
	if profile.BodySize != 12 {
		t.Errorf("BodySize = %v, want 12", profile.BodySize)
	}
}

func TestAnalyzeFonts_Empty(t *testing.T) {
	profile := AnalyzeFonts(nil, 3)
	if !profile.Uniform {
		t.Error("empty document must disable the size signal")
	}
}

func TestAnalyzeFonts_MedianFallback(t *testing.T) {
	// Two sizes with identical word weight: no dominant mode, use median.
	runs := []models.TextRun{
		run("four words right here", 9, false),
		run("also four words here", 12, false),
	}
	profile := AnalyzeFonts(runs, 3)
	if profile.BodySize != 9 && profile.BodySize != 12 {
		t.Errorf("BodySize = %v, want one of the observed sizes", profile.BodySize)
	}
}

func TestAnalyzeFonts_BoldBody(t *testing.T) {
	runs := []models.TextRun{
		run("a bold document where even body text is bold throughout", 10, true),
		run("more bold body words in the same size", 10, true),
		run("tiny regular footnote", 10, false),
	}
	profile := AnalyzeFonts(runs, 3)
	if !profile.BodyBold {
		t.Error("BodyBold = false, want true for majority-bold body")
	}
}
