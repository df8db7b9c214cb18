// Package pipeline runs the full document ranking flow: list PDFs, extract
// text runs, build sections, score them against the query, and select the
// final ranked subset.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/embedding"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/models"
	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/ranking"
	"github.com/docsift/docsift/internal/selection"
)

// Pipeline wires extraction, ranking, and selection together for one input
// directory. It is stateless between runs: every Run reads the documents
// fresh and fits a new vector space.
type Pipeline struct {
	inputDir   string
	outlineCfg *outline.Config
	builder    *outline.Builder
	ranker     *ranking.Ranker
	selector   *selection.Selector
	logger     *zap.Logger

	// extractFile is swappable in tests; extract.File otherwise.
	extractFile func(path string) ([]models.TextRun, error)
}

// New creates a pipeline from cfg. embedder may be nil, in which case every
// run scores with the TF-IDF fallback.
func New(cfg *config.Config, embedder embedding.Embedder, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	outlineCfg := cfg.Outline
	scoringCfg := cfg.Scoring
	selectionCfg := cfg.Selection
	return &Pipeline{
		inputDir:    cfg.Input.Dir,
		outlineCfg:  &outlineCfg,
		builder:     outline.NewBuilder(&outlineCfg),
		ranker:      ranking.NewRanker(&scoringCfg, embedder, logger),
		selector:    selection.NewSelector(&selectionCfg, logger),
		logger:      logger,
		extractFile: extract.File,
	}
}

// SemanticEnabled reports whether the pipeline has an embedding backend.
func (p *Pipeline) SemanticEnabled() bool {
	return p.ranker.SemanticEnabled()
}

// Run processes every PDF in the input directory against query and returns
// the ranked selection. A document that cannot be read or parsed is logged
// and skipped; Run fails only when the query is invalid, the directory holds
// no PDFs, or no document could be read at all.
func (p *Pipeline) Run(ctx context.Context, query models.Query) (*models.SelectionResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	paths, err := extract.ListPDFs(p.inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF documents in %s", p.inputDir)
	}

	var documents []string
	var sections []models.Section
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docID := filepath.Base(path)

		runs, err := p.extractFile(path)
		if err != nil {
			p.logger.Warn("skipping unreadable document",
				zap.String("document", docID), zap.Error(err))
			continue
		}
		// Only successfully processed documents are reported in the result.
		documents = append(documents, docID)

		docSections := outline.FilterValid(p.builder.Build(docID, runs), p.outlineCfg)
		p.logger.Debug("document extracted",
			zap.String("document", docID),
			zap.Int("runs", len(runs)),
			zap.Int("sections", len(docSections)))
		sections = append(sections, docSections...)
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("none of the %d documents in %s could be read", len(paths), p.inputDir)
	}

	scored, semanticUsed, err := p.ranker.Score(ctx, query, sections)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	selected := p.selector.Select(scored)
	p.logger.Info("pipeline run complete",
		zap.Int("documents", len(documents)),
		zap.Int("candidates", len(scored)),
		zap.Int("selected", len(selected)),
		zap.Bool("semantic", semanticUsed))

	return &models.SelectionResult{
		Query:           query,
		Documents:       documents,
		Sections:        selected,
		SemanticUsed:    semanticUsed,
		TotalCandidates: len(scored),
	}, nil
}
