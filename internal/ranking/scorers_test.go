package ranking

import "testing"

func TestKeywordScore(t *testing.T) {
	terms := StemmedTerms("find sampling methodology")
	tests := []struct {
		name    string
		text    string
		wantMin float64
		wantMax float64
	}{
		{"full coverage", "the sampling methodology we find useful", 0.99, 1.0},
		{"stemmed match", "several methodologies were sampled with useful findings", 0.99, 1.0},
		{"partial", "the sampling procedure", 0.3, 0.4},
		{"no match", "completely unrelated words", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordScore(terms, tt.text)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("KeywordScore = %f, want [%f,%f]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestKeywordScore_EmptyQuery(t *testing.T) {
	if got := KeywordScore(nil, "any text"); got != 0 {
		t.Errorf("empty query terms: got %f, want 0", got)
	}
}

func TestPositionScore_MonotonicWithinDocument(t *testing.T) {
	prev := 2.0
	for idx := 0; idx < 5; idx++ {
		got := PositionScore(idx, 5, 1)
		if got < 0 || got > 1 {
			t.Fatalf("score %f out of [0,1]", got)
		}
		if got > prev {
			t.Errorf("idx %d score %f exceeds earlier %f", idx, got, prev)
		}
		prev = got
	}
}

func TestPositionScore_PerDocumentNormalization(t *testing.T) {
	// First section of a long document and of a short document both score
	// top marks within their own document.
	long := PositionScore(0, 40, 1)
	short := PositionScore(0, 2, 1)
	if long != short {
		t.Errorf("first-section scores differ across documents: %f vs %f", long, short)
	}
}

func TestPositionScore_Bounds(t *testing.T) {
	if got := PositionScore(0, 0, 1); got != 0 {
		t.Errorf("zero sections: got %f", got)
	}
	if got := PositionScore(5, 3, 1); got != 0 {
		t.Errorf("index out of range: got %f", got)
	}
}

func TestHeadingScore(t *testing.T) {
	tests := []struct {
		heading string
		wantMin float64
		wantMax float64
	}{
		{"", 0, 0},
		{"A", 0, 0},
		{"Overview", 0.4, 0.4},
		{"Data Collection", 0.7, 0.7},
		{"Sampling Methods", 1.0, 1.0},
		{"Results", 0.7, 0.7}, // informative single word
	}
	for _, tt := range tests {
		got := HeadingScore(tt.heading)
		if got < tt.wantMin || got > tt.wantMax {
			t.Errorf("HeadingScore(%q) = %f, want [%f,%f]", tt.heading, got, tt.wantMin, tt.wantMax)
		}
	}
}

func TestLengthScore(t *testing.T) {
	if got := LengthScore(0, 100); got != 0 {
		t.Errorf("zero words: got %f", got)
	}
	if got := LengthScore(50, 100); got != 0.5 {
		t.Errorf("half saturation: got %f", got)
	}
	if got := LengthScore(100, 100); got != 1 {
		t.Errorf("at saturation: got %f", got)
	}
	if got := LengthScore(10000, 100); got != 1 {
		t.Errorf("beyond saturation must cap at 1: got %f", got)
	}
	if a, b := LengthScore(30, 100), LengthScore(60, 100); a >= b {
		t.Errorf("length score not increasing: %f >= %f", a, b)
	}
}

func TestSalientTerms(t *testing.T) {
	text := "The Monte Carlo method uses randomized simulation for probability estimation"
	terms := SalientTerms(text, 10)
	if len(terms) == 0 {
		t.Fatal("no salient terms extracted")
	}
	found := false
	for _, term := range terms {
		if term == "Monte Carlo" {
			found = true
		}
	}
	if !found {
		t.Errorf("title-case phrase missing from %v", terms)
	}
}

func TestSalientTerms_Limit(t *testing.T) {
	text := "Alpha Beta Gamma Delta computation simulation estimation calculation method model framework algorithm"
	if terms := SalientTerms(text, 3); len(terms) > 3 {
		t.Errorf("limit ignored: %v", terms)
	}
}

func TestStemmedTerms(t *testing.T) {
	terms := StemmedTerms("the methodologies and methodology")
	if len(terms) != 1 {
		t.Errorf("want one unique stem, got %v", terms)
	}
}
