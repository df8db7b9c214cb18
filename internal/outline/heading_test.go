package outline

import (
	"testing"

	"github.com/docsift/docsift/internal/models"
)

func bodyProfile() models.FontProfile {
	return models.FontProfile{BodySize: 10, BodyBold: false, SizeCounts: map[float64]int{10: 100, 14: 5}}
}

func TestIsBullet(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"• Item one", true},
		{"● point", true},
		{"- dashed item", true},
		{"* starred", true},
		{"(1) first", true},
		{"1) first", true},
		{"a) lettered", true},
		{"1. Introduction", false},
		{"Plain Heading", false},
		{"2.1 Methods", false},
	}
	for _, tt := range tests {
		if got := IsBullet(tt.text); got != tt.want {
			t.Errorf("IsBullet(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	profile := bodyProfile()

	tests := []struct {
		name string
		run  models.TextRun
		want Class
	}{
		{"larger font heading", run("Experimental Setup", 14, false), ClassHeading},
		{"bold emphasis heading", run("Data Collection", 10, true), ClassHeading},
		{"numbered heading at body size", run("1. Introduction", 10, false), ClassHeading},
		{"decimal numbered heading", run("2.3 Evaluation Metrics", 10, false), ClassHeading},
		{"all caps short line", run("RESULTS AND DISCUSSION", 10, false), ClassHeading},
		{"plain body sentence", run("the quick brown fox jumps over the lazy dog", 10, false), ClassContent},
		{"body-size non-bold no pattern", run("some plain words without pattern", 10, false), ClassContent},
		{"bullet overrides size and bold", run("• Item one", 14, true), ClassContent},
		{"dash bullet overrides", run("- note about something", 16, true), ClassContent},
		{"too long for a heading", run("This Line Has Far Too Many Words To Ever Be A Heading Because Headings Are Short Lines Not Paragraphs Of Text At All", 14, true), ClassContent},
		{"ends with period", run("A sentence that ends here.", 14, false), ClassContent},
		{"bare number", run("423", 14, true), ClassContent},
		{"caption", run("Figure 3 results over time", 14, true), ClassContent},
		{"footer url", run("www.example.com resources", 14, true), ClassContent},
		{"lowercase start", run("introduction to the topic", 14, false), ClassContent},
		{"too short", run("Hi", 18, true), ClassContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.run, profile, cfg); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.run.Content, got, tt.want)
			}
		})
	}
}

func TestClassify_UniformProfileDisablesSizeSignal(t *testing.T) {
	cfg := DefaultConfig()
	uniform := models.FontProfile{BodySize: 12, Uniform: true, SizeCounts: map[float64]int{12: 50}}

	// Larger size alone is not trusted when the histogram is degenerate...
	r := run("Some plain words without pattern", 14, false)
	if got := Classify(r, uniform, cfg); got != ClassContent {
		t.Errorf("uniform profile: size-only candidate = %v, want content", got)
	}
	// ...but text patterns still work.
	h := run("1. Introduction", 12, false)
	if got := Classify(h, uniform, cfg); got != ClassHeading {
		t.Errorf("uniform profile: numbered heading = %v, want heading", got)
	}
}

func TestClassify_BulletScenario(t *testing.T) {
	// "1. Introduction" (font 14, bold) is a heading; "• Note" (font 14,
	// bold) stays content despite identical font signals.
	cfg := DefaultConfig()
	profile := bodyProfile()

	if got := Classify(run("1. Introduction", 14, true), profile, cfg); got != ClassHeading {
		t.Errorf("numbered bold heading = %v, want heading", got)
	}
	if got := Classify(run("• Note", 14, true), profile, cfg); got != ClassContent {
		t.Errorf("bold bullet = %v, want content", got)
	}
}
