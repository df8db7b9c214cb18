package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"TimesNewRomanPS-BoldMT", true},
		{"Arial Black", true},
		{"SourceSansPro-Heavy", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt", "c.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListPDFs(dir)
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3: %v", len(paths), paths)
	}
	// Sorted, case-insensitive extension match, directories skipped.
	want := []string{
		filepath.Join(dir, "a.PDF"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "c.pdf"),
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestListPDFs_MissingDir(t *testing.T) {
	if _, err := ListPDFs(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRuns_MalformedPDF(t *testing.T) {
	if _, err := Runs([]byte("not a pdf at all")); err == nil {
		t.Error("expected error for malformed PDF")
	}
}
