package selection

// Config controls how many sections the selector keeps and how summaries
// are built.
type Config struct {
	// MaxSections is the total number of sections in the final result.
	MaxSections int `yaml:"max_sections"`
	// MaxPerDocument caps sections from a single document, keeping the
	// result diverse across the corpus.
	MaxPerDocument int `yaml:"max_per_document"`
	// SummarySentences is the number of sentences in each extractive summary.
	SummarySentences int `yaml:"summary_sentences"`
	// DuplicateThreshold is the heading word-overlap ratio above which two
	// sections are treated as duplicates.
	DuplicateThreshold float64 `yaml:"duplicate_threshold"`
	// RelaxCap allows a second pass that refills the result past
	// MaxPerDocument when the cap leaves it short of MaxSections. Off by
	// default: the cap is a hard diversity guarantee, and a short result is
	// preferable to one document dominating it.
	RelaxCap bool `yaml:"relax_cap"`
}

// DefaultConfig returns the default selection configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxSections:        5,
		MaxPerDocument:     2,
		SummarySentences:   3,
		DuplicateThreshold: 0.7,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.MaxSections <= 0 {
		c.MaxSections = def.MaxSections
	}
	if c.MaxPerDocument <= 0 {
		c.MaxPerDocument = def.MaxPerDocument
	}
	if c.SummarySentences <= 0 {
		c.SummarySentences = def.SummarySentences
	}
	if c.DuplicateThreshold <= 0 || c.DuplicateThreshold > 1 {
		c.DuplicateThreshold = def.DuplicateThreshold
	}
}
