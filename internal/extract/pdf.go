package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docsift/docsift/internal/models"
)

// wordGapFactor is the fraction of the font size a horizontal gap must
// exceed before fragments are treated as separate words.
const wordGapFactor = 0.3

// lineTolerance is the vertical distance (in points) within which fragments
// belong to the same line.
const lineTolerance = 2.0

// Runs parses a PDF and returns its text as line-level runs in reading
// order, carrying the font metadata heading detection needs.
func Runs(content []byte) (runs []models.TextRun, err error) {
	// The pdf library panics on some malformed files; one bad document must
	// not take down the batch.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		runs = append(runs, pageRuns(page, i)...)
	}
	return runs, nil
}

// pageRuns groups a page's raw text fragments into lines. Fragments are
// sorted top-to-bottom then left-to-right; a fragment starts a new line when
// its baseline moves beyond lineTolerance.
func pageRuns(page pdf.Page, pageNum int) []models.TextRun {
	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var runs []models.TextRun
	var line []pdf.Text
	for _, t := range texts {
		if len(line) > 0 && abs(t.Y-line[0].Y) > lineTolerance {
			if run, ok := lineRun(line, pageNum); ok {
				runs = append(runs, run)
			}
			line = line[:0]
		}
		line = append(line, t)
	}
	if run, ok := lineRun(line, pageNum); ok {
		runs = append(runs, run)
	}
	return runs
}

// lineRun joins one line's fragments into a TextRun, inserting spaces at
// word-sized horizontal gaps. Font size and weight come from the first
// fragment, which is what the heading heuristics key on.
func lineRun(line []pdf.Text, pageNum int) (models.TextRun, bool) {
	if len(line) == 0 {
		return models.TextRun{}, false
	}
	var sb strings.Builder
	prevEnd := line[0].X
	for _, t := range line {
		gap := t.X - prevEnd
		threshold := t.FontSize * wordGapFactor
		if threshold <= 0 {
			threshold = 1.0
		}
		if sb.Len() > 0 && gap > threshold {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return models.TextRun{}, false
	}
	return models.TextRun{
		Content:  content,
		FontSize: line[0].FontSize,
		Bold:     isBoldFont(line[0].Font),
		Page:     pageNum,
		Y:        line[0].Y,
	}, true
}

// isBoldFont reports whether a PDF font name indicates a bold face
// (e.g. "Helvetica-Bold", "TimesNewRomanPS-BoldMT", "Arial Black").
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
