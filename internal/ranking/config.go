// Package ranking scores extracted sections against a persona+job query by
// blending semantic similarity, TF-IDF relevance, keyword overlap, and
// structural heuristics into one composite score.
package ranking

// Weights are the blend weights for the composite score. They sum to 1 by
// default; arbitrary overrides are renormalized at scoring time.
type Weights struct {
	Semantic float64 `yaml:"semantic"` // default: 0.40
	TFIDF    float64 `yaml:"tfidf"`    // default: 0.30
	Keyword  float64 `yaml:"keyword"`  // default: 0.10
	Position float64 `yaml:"position"` // default: 0.10
	Heading  float64 `yaml:"heading"`  // default: 0.05
	Length   float64 `yaml:"length"`   // default: 0.05
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Semantic + w.TFIDF + w.Keyword + w.Position + w.Heading + w.Length
}

// Config holds all scoring configuration.
type Config struct {
	Weights Weights `yaml:"weights"`

	// LengthSaturation is the content word count at which the length score
	// reaches 1; longer sections gain nothing further.
	LengthSaturation int `yaml:"length_saturation"` // default: 100
	// MaxSalientTerms caps the extracted terms appended to section text
	// before vectorization.
	MaxSalientTerms int `yaml:"max_salient_terms"` // default: 10
	// MaxFeatures caps the TF-IDF vocabulary.
	MaxFeatures int `yaml:"max_features"` // default: 5000
	// NgramMax is the largest n-gram length in the TF-IDF vocabulary.
	NgramMax int `yaml:"ngram_max"` // default: 2
	// MaxDF prunes terms appearing in more than this fraction of documents.
	MaxDF float64 `yaml:"max_df"` // default: 0.95
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Semantic: 0.40,
			TFIDF:    0.30,
			Keyword:  0.10,
			Position: 0.10,
			Heading:  0.05,
			Length:   0.05,
		},
		LengthSaturation: 100,
		MaxSalientTerms:  10,
		MaxFeatures:      5000,
		NgramMax:         2,
		MaxDF:            0.95,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Weights.Sum() == 0 {
		c.Weights = d.Weights
	}
	if c.LengthSaturation == 0 {
		c.LengthSaturation = d.LengthSaturation
	}
	if c.MaxSalientTerms == 0 {
		c.MaxSalientTerms = d.MaxSalientTerms
	}
	if c.MaxFeatures == 0 {
		c.MaxFeatures = d.MaxFeatures
	}
	if c.NgramMax == 0 {
		c.NgramMax = d.NgramMax
	}
	if c.MaxDF == 0 {
		c.MaxDF = d.MaxDF
	}
}

// EffectiveWeights returns the weights actually applied for a run. When the
// embedding backend is unavailable the semantic weight is folded into the
// TF-IDF weight, so the composite stays in [0,1] and the fallback is a
// deterministic mode rather than a silent zero.
func (c *Config) EffectiveWeights(semanticUsed bool) Weights {
	w := c.Weights
	if !semanticUsed {
		w.TFIDF += w.Semantic
		w.Semantic = 0
	}
	return w
}
