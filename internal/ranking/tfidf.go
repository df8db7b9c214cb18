package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-zA-Z0-9]{2,}`)

// tokenizeText lowercases text and returns its word tokens with stop words
// removed.
func tokenizeText(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if !isStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// SparseVector is a TF-IDF vector indexed by vocabulary position.
type SparseVector map[int]float64

// Dot returns the dot product of two sparse vectors. For unit-normalized
// vectors this is the cosine similarity.
func (v SparseVector) Dot(other SparseVector) float64 {
	if len(other) < len(v) {
		v, other = other, v
	}
	sum := 0.0
	for i, a := range v {
		if b, ok := other[i]; ok {
			sum += a * b
		}
	}
	return sum
}

// Vectorizer maps text into a TF-IDF vector space over unigrams and
// bigrams. It is a strict two-phase object: Fit once over the whole corpus
// (including the query as a pseudo-document), then Transform many times.
// The space never changes after fitting, so all scores in a run are
// comparable.
type Vectorizer struct {
	ngramMax    int
	maxFeatures int
	maxDF       float64

	vocab  map[string]int
	idf    []float64
	fitted bool
}

// NewVectorizer creates a vectorizer. ngramMax of 2 includes bigrams;
// maxFeatures caps the vocabulary by document frequency; maxDF prunes terms
// present in more than that fraction of documents.
func NewVectorizer(ngramMax, maxFeatures int, maxDF float64) *Vectorizer {
	if ngramMax <= 0 {
		ngramMax = 2
	}
	if maxFeatures <= 0 {
		maxFeatures = 5000
	}
	if maxDF <= 0 || maxDF > 1 {
		maxDF = 0.95
	}
	return &Vectorizer{ngramMax: ngramMax, maxFeatures: maxFeatures, maxDF: maxDF}
}

// features expands tokens into unigrams through ngramMax-grams.
func (v *Vectorizer) features(tokens []string) []string {
	feats := make([]string, 0, len(tokens)*v.ngramMax)
	for n := 1; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			feats = append(feats, strings.Join(tokens[i:i+n], " "))
		}
	}
	return feats
}

// Fit builds the vocabulary and IDF table from docs. Refitting replaces the
// space entirely.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, f := range v.features(tokenizeText(doc)) {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				df[f]++
			}
		}
	}

	maxDocs := len(docs)
	terms := make([]string, 0, len(df))
	for term, count := range df {
		// max_df pruning only makes sense with more than one document.
		if maxDocs > 1 && float64(count) > v.maxDF*float64(maxDocs) {
			continue
		}
		terms = append(terms, term)
	}
	// Keep the most document-frequent terms; sort alphabetically within a
	// frequency so the space is deterministic.
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF so unseen terms never divide by zero.
		v.idf[i] = math.Log(float64(1+maxDocs)/float64(1+df[term])) + 1
	}
	v.fitted = true
}

// Fitted reports whether Fit has been called.
func (v *Vectorizer) Fitted() bool {
	return v.fitted
}

// VocabularySize returns the number of features in the fitted space.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Transform maps text into the fitted space as a unit-normalized TF-IDF
// vector. Terms outside the vocabulary are ignored. Returns an empty vector
// before fitting or when nothing matches.
func (v *Vectorizer) Transform(text string) SparseVector {
	vec := make(SparseVector)
	if !v.fitted {
		return vec
	}
	for _, f := range v.features(tokenizeText(text)) {
		if idx, ok := v.vocab[f]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	// L2 normalize so Dot is cosine similarity.
	norm := 0.0
	for _, val := range vec {
		norm += val * val
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
