package outline

import (
	"math"
	"sort"

	"github.com/docsift/docsift/internal/models"
)

type fontKey struct {
	size float64
	bold bool
}

// AnalyzeFonts aggregates font statistics across a document's runs and
// returns the body-text profile. Counts are weighted by word count so a few
// long paragraphs outvote many short decorations; runs shorter than
// minRunChars are excluded to avoid skew from page numbers and footers.
func AnalyzeFonts(runs []models.TextRun, minRunChars int) models.FontProfile {
	counts := make(map[fontKey]int)
	sizeCounts := make(map[float64]int)

	for _, run := range runs {
		if len(run.Content) < minRunChars {
			continue
		}
		key := fontKey{size: roundSize(run.FontSize), bold: run.Bold}
		words := run.Words()
		if words == 0 {
			continue
		}
		counts[key] += words
		sizeCounts[key.size] += words
	}

	if len(sizeCounts) == 0 {
		// Nothing usable: treat everything as body text and disable the
		// size-based heading signal.
		return models.FontProfile{Uniform: true, SizeCounts: sizeCounts}
	}

	bodySize, dominant := modeSize(sizeCounts)
	if !dominant {
		bodySize = medianSize(sizeCounts)
	}

	// Body weight is the majority bold flag among body-sized runs.
	boldWords, regularWords := 0, 0
	for key, n := range counts {
		if key.size != bodySize {
			continue
		}
		if key.bold {
			boldWords += n
		} else {
			regularWords += n
		}
	}

	return models.FontProfile{
		BodySize:   bodySize,
		BodyBold:   boldWords > regularWords,
		SizeCounts: sizeCounts,
		Uniform:    len(sizeCounts) <= 1,
	}
}

// roundSize buckets font sizes to a tenth of a point so that floating-point
// jitter in extracted metadata does not split the histogram.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// modeSize returns the most frequent size and whether it is a dominant mode
// (strictly more frequent than every other size). Ties mean no dominant mode.
func modeSize(sizeCounts map[float64]int) (float64, bool) {
	best, bestCount, secondCount := 0.0, 0, 0
	for size, n := range sizeCounts {
		switch {
		case n > bestCount:
			secondCount = bestCount
			best, bestCount = size, n
		case n == bestCount && size != best:
			secondCount = n
		case n > secondCount:
			secondCount = n
		}
	}
	return best, bestCount > secondCount
}

// medianSize returns the word-weighted median font size.
func medianSize(sizeCounts map[float64]int) float64 {
	sizes := make([]float64, 0, len(sizeCounts))
	total := 0
	for size, n := range sizeCounts {
		sizes = append(sizes, size)
		total += n
	}
	sort.Float64s(sizes)
	half := total / 2
	seen := 0
	for _, size := range sizes {
		seen += sizeCounts[size]
		if seen > half {
			return size
		}
	}
	return sizes[len(sizes)-1]
}
