// Package extract reads PDF documents into ordered text runs with font
// metadata. The rest of the pipeline depends only on the run shape, not on
// the PDF library.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/models"
)

// File extracts the text runs of the PDF at path.
func File(path string) ([]models.TextRun, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	runs, err := Runs(content)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	return runs, nil
}

// ListPDFs returns the PDF files directly inside dir, sorted by name so that
// repeated runs process documents in a deterministic order.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
