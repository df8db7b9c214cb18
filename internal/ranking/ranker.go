package ranking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/docsift/docsift/internal/embedding"
	"github.com/docsift/docsift/internal/models"
	"github.com/docsift/docsift/pkg/utils"
)

// Ranker scores sections against a query. The embedding backend is a
// capability decided at construction: a nil embedder means the run uses the
// TF-IDF fallback from the start, and an embedder that fails mid-run demotes
// the whole run to the fallback rather than zeroing individual scores.
type Ranker struct {
	cfg      *Config
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewRanker creates a ranker. embedder may be nil (TF-IDF-only mode).
func NewRanker(cfg *Config, embedder embedding.Embedder, logger *zap.Logger) *Ranker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{cfg: cfg, embedder: embedder, logger: logger}
}

// SemanticEnabled reports whether an embedding backend is wired in.
func (r *Ranker) SemanticEnabled() bool {
	return r.embedder != nil
}

// Score computes all component scores and the weighted composite for every
// section. Two-phase by design: the TF-IDF space is fitted once over the
// full cross-document corpus plus the query pseudo-document, then every
// section is scored in that fixed space. No filtering happens here.
// The returned bool reports whether semantic similarity contributed.
func (r *Ranker) Score(ctx context.Context, query models.Query, sections []models.Section) ([]models.ScoredSection, bool, error) {
	semanticUsed := r.embedder != nil
	if len(sections) == 0 {
		return nil, semanticUsed, nil
	}

	queryText := query.Text()
	texts := make([]string, len(sections))
	for i, s := range sections {
		texts[i] = enrichedText(s.Heading, s.Content, r.cfg.MaxSalientTerms)
	}

	// Phase one: fit the vector space over corpus + query.
	vectorizer := NewVectorizer(r.cfg.NgramMax, r.cfg.MaxFeatures, r.cfg.MaxDF)
	vectorizer.Fit(append(append([]string{}, texts...), queryText))
	queryVec := vectorizer.Transform(queryText)

	// Dense embeddings for the whole corpus and the query in one batch.
	var sectionEmb [][]float32
	var queryEmb []float32
	if semanticUsed {
		batch, err := r.embedder.EmbedBatch(ctx, append(append([]string{}, texts...), queryText))
		if err != nil {
			// Structural mode change for the whole run, not a per-section error.
			r.logger.Warn("embedding backend unavailable, scoring with TF-IDF fallback", zap.Error(err))
			semanticUsed = false
		} else {
			sectionEmb = batch[:len(texts)]
			queryEmb = batch[len(texts)]
		}
	}

	queryTerms := StemmedTerms(queryText)
	docCounts := make(map[string]int)
	for _, s := range sections {
		docCounts[s.DocumentID]++
	}

	weights := r.cfg.EffectiveWeights(semanticUsed)
	weightSum := weights.Sum()
	if weightSum <= 0 {
		weightSum = 1
	}

	scored := make([]models.ScoredSection, len(sections))
	for i, s := range sections {
		scores := models.Scores{
			TFIDF:    utils.Clamp01(queryVec.Dot(vectorizer.Transform(texts[i]))),
			Keyword:  KeywordScore(queryTerms, texts[i]),
			Position: PositionScore(s.OrderIndex, docCounts[s.DocumentID], s.Page),
			Heading:  HeadingScore(s.Heading),
			Length:   LengthScore(len(strings.Fields(s.Content)), r.cfg.LengthSaturation),
		}
		if semanticUsed {
			// Cosine in [-1,1] mapped to [0,1].
			scores.Semantic = utils.Clamp01((utils.CosineSimilarity(sectionEmb[i], queryEmb) + 1) / 2)
		}
		scores.Composite = utils.Clamp01((weights.Semantic*scores.Semantic +
			weights.TFIDF*scores.TFIDF +
			weights.Keyword*scores.Keyword +
			weights.Position*scores.Position +
			weights.Heading*scores.Heading +
			weights.Length*scores.Length) / weightSum)
		scored[i] = models.ScoredSection{Section: s, Scores: scores}
	}
	return scored, semanticUsed, nil
}
