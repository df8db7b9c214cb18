package outline

import (
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/models"
)

func section(heading, content string) models.Section {
	return models.Section{Heading: heading, Content: content, DocumentID: "doc.pdf", Page: 1}
}

func TestValid(t *testing.T) {
	cfg := DefaultConfig()
	longContent := strings.Repeat("word ", 20)

	tests := []struct {
		name string
		s    models.Section
		want bool
	}{
		{"good section", section("Sampling Methods", longContent), true},
		{"single word heading", section("Methods", longContent), false},
		{"empty heading", section("", longContent), false},
		{"short content", section("Sampling Methods", "too few words here"), false},
		{"boilerplate references", section("References", longContent), false},
		{"boilerplate toc", section("Table of Contents", longContent), false},
		{"boilerplate case insensitive", section("REFERENCES", longContent), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.s, cfg); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.s.Heading, got, tt.want)
			}
		})
	}
}

func TestFilterValid_Reindexes(t *testing.T) {
	cfg := DefaultConfig()
	longContent := strings.Repeat("word ", 20)
	in := []models.Section{
		{Heading: "References", Content: longContent, OrderIndex: 0},
		{Heading: "Data Analysis", Content: longContent, OrderIndex: 1},
		{Heading: "Short", Content: "tiny", OrderIndex: 2},
		{Heading: "Study Limitations", Content: longContent, OrderIndex: 3},
	}
	out := FilterValid(in, cfg)
	if len(out) != 2 {
		t.Fatalf("got %d sections, want 2", len(out))
	}
	if out[0].OrderIndex != 0 || out[1].OrderIndex != 1 {
		t.Errorf("order indexes = %d,%d, want dense 0,1", out[0].OrderIndex, out[1].OrderIndex)
	}
	if out[0].Heading != "Data Analysis" || out[1].Heading != "Study Limitations" {
		t.Errorf("kept wrong sections: %q, %q", out[0].Heading, out[1].Heading)
	}
}
